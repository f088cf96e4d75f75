package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"consignment-tracker/internal/core/cache"
	"consignment-tracker/internal/features/tracking/domain"
)

// RedisSummaryRepository caches derived tracking summaries behind the cache
// port. A stale summary is harmless: it is replaced wholesale on the next
// miss, never merged.
type RedisSummaryRepository struct {
	cache cache.Cache
}

// NewRedisSummaryRepository creates a new RedisSummaryRepository.
func NewRedisSummaryRepository(c cache.Cache) *RedisSummaryRepository {
	return &RedisSummaryRepository{
		cache: c,
	}
}

// summaryKey builds the cache key for a kind and reference.
func summaryKey(kind, reference string) string {
	return fmt.Sprintf("tracking_summary:%s:%s", kind, reference)
}

// Save stores the summary with the given TTL.
func (r *RedisSummaryRepository) Save(ctx context.Context, kind string, summary *domain.Summary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := r.cache.Set(ctx, summaryKey(kind, summary.Reference), data, ttl); err != nil {
		return fmt.Errorf("failed to save summary to cache: %w", err)
	}

	return nil
}

// Get retrieves a cached summary, or (nil, nil) when absent.
func (r *RedisSummaryRepository) Get(ctx context.Context, kind, reference string) (*domain.Summary, error) {
	data, err := r.cache.Get(ctx, summaryKey(kind, reference))
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary from cache: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var summary domain.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}
