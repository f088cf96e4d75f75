package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"consignment-tracker/internal/core/cache"
	"consignment-tracker/internal/features/advisories/domain"
)

const advisoryCacheKey = "service_advisory"

// RedisAdvisoryRepository implements ports.AdvisoryRepository on the cache port.
type RedisAdvisoryRepository struct {
	cache cache.Cache
}

// NewRedisAdvisoryRepository creates a new RedisAdvisoryRepository.
func NewRedisAdvisoryRepository(c cache.Cache) *RedisAdvisoryRepository {
	return &RedisAdvisoryRepository{
		cache: c,
	}
}

// Save stores the advisory. Duration 0 stores it without expiration.
func (r *RedisAdvisoryRepository) Save(ctx context.Context, advisory *domain.Advisory) error {
	data, err := json.Marshal(advisory)
	if err != nil {
		return fmt.Errorf("failed to marshal advisory: %w", err)
	}

	ttl := time.Duration(advisory.Duration) * time.Second
	if err := r.cache.Set(ctx, advisoryCacheKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save advisory to cache: %w", err)
	}

	return nil
}

// Get retrieves the active advisory, or (nil, nil) when none is set.
func (r *RedisAdvisoryRepository) Get(ctx context.Context) (*domain.Advisory, error) {
	data, err := r.cache.Get(ctx, advisoryCacheKey)
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get advisory from cache: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var advisory domain.Advisory
	if err := json.Unmarshal(data, &advisory); err != nil {
		return nil, fmt.Errorf("failed to unmarshal advisory: %w", err)
	}

	return &advisory, nil
}

// Delete removes the active advisory.
func (r *RedisAdvisoryRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, advisoryCacheKey); err != nil {
		return fmt.Errorf("failed to delete advisory from cache: %w", err)
	}
	return nil
}
