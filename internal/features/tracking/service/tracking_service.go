package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"consignment-tracker/internal/core/logger"
	"consignment-tracker/internal/features/tracking/domain"
	"consignment-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

var (
	// ErrKindNotSupported is returned when no provider serves the requested booking kind.
	ErrKindNotSupported = errors.New("booking kind not supported")
	// ErrBookingNotFound is returned when the backend does not know the reference.
	ErrBookingNotFound = errors.New("booking not found")
)

// TrackingService orchestrates tracking lookups: it routes a reference to
// the provider for its booking kind, normalizes the raw record into a
// summary, and caches the result. Each lookup replaces any cached summary
// wholesale; partial merges never happen.
type TrackingService struct {
	providers  []ports.BookingProvider
	summaries  ports.SummaryRepository
	summaryTTL time.Duration
}

// NewTrackingService creates a new TrackingService. The repository may be
// nil, in which case every lookup hits the backend.
func NewTrackingService(providers []ports.BookingProvider, summaries ports.SummaryRepository, summaryTTL time.Duration) *TrackingService {
	return &TrackingService{
		providers:  providers,
		summaries:  summaries,
		summaryTTL: summaryTTL,
	}
}

// GetTrackingSummary resolves the tracking summary for a reference and kind.
func (s *TrackingService) GetTrackingSummary(ctx context.Context, reference, kind string) (*domain.Summary, error) {
	if s.summaries != nil {
		cached, err := s.summaries.Get(ctx, kind, reference)
		if err != nil {
			logger.Get().Warn("Summary cache read failed",
				zap.String("reference", reference),
				zap.Error(err),
			)
		}
		if cached != nil {
			return cached, nil
		}
	}

	for _, provider := range s.providers {
		if !provider.SupportsKind(kind) {
			continue
		}

		record, err := provider.FetchBooking(ctx, reference)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch booking from provider: %w", err)
		}
		if record == nil {
			return nil, ErrBookingNotFound
		}

		summary := domain.BuildSummary(record, domain.FlowForKind(kind))

		if s.summaries != nil {
			if err := s.summaries.Save(ctx, kind, summary, s.summaryTTL); err != nil {
				logger.Get().Warn("Summary cache write failed",
					zap.String("reference", reference),
					zap.Error(err),
				)
			}
		}

		return summary, nil
	}

	return nil, ErrKindNotSupported
}
