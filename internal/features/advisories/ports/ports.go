package ports

import (
	"context"

	"consignment-tracker/internal/features/advisories/domain"
)

// AdvisoryService defines the primary port for advisory operations.
type AdvisoryService interface {
	SetAdvisory(ctx context.Context, title, detail string, severity domain.AdvisorySeverity, region string, duration int) error
	GetAdvisory(ctx context.Context) (*domain.Advisory, error)
	RemoveAdvisory(ctx context.Context) error
}

// AdvisoryRepository defines the secondary port for advisory storage.
type AdvisoryRepository interface {
	Save(ctx context.Context, advisory *domain.Advisory) error
	Get(ctx context.Context) (*domain.Advisory, error)
	Delete(ctx context.Context) error
}
