package ports

import (
	"context"
	"time"

	"consignment-tracker/internal/features/tracking/domain"
)

// BookingProvider defines the interface for booking backend implementations.
// This is a Secondary Port (Driven Port).
type BookingProvider interface {
	// FetchBooking retrieves the raw booking record for a reference.
	// A booking the backend does not know returns (nil, nil).
	FetchBooking(ctx context.Context, reference string) (*domain.BookingRecord, error)
	// SupportsKind returns true if this provider serves the given booking kind.
	SupportsKind(kind string) bool
}

// SummaryRepository defines the secondary port for caching derived summaries.
type SummaryRepository interface {
	// Save stores a summary under its kind and reference with the given TTL.
	Save(ctx context.Context, kind string, summary *domain.Summary, ttl time.Duration) error
	// Get retrieves a cached summary, or (nil, nil) when absent.
	Get(ctx context.Context, kind, reference string) (*domain.Summary, error)
}
