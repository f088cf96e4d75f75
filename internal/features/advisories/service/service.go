package service

import (
	"context"
	"fmt"

	"consignment-tracker/internal/features/advisories/domain"
	"consignment-tracker/internal/features/advisories/ports"
)

// AdvisoryServiceImpl implements ports.AdvisoryService.
type AdvisoryServiceImpl struct {
	repo ports.AdvisoryRepository
}

// NewAdvisoryService creates a new AdvisoryServiceImpl.
func NewAdvisoryService(repo ports.AdvisoryRepository) *AdvisoryServiceImpl {
	return &AdvisoryServiceImpl{
		repo: repo,
	}
}

// SetAdvisory creates and saves a new advisory, replacing any active one.
func (s *AdvisoryServiceImpl) SetAdvisory(ctx context.Context, title, detail string, severity domain.AdvisorySeverity, region string, duration int) error {
	advisory, err := domain.NewAdvisory(title, detail, severity, region, duration)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, advisory); err != nil {
		return fmt.Errorf("service: failed to save advisory: %w", err)
	}

	return nil
}

// GetAdvisory retrieves the active advisory.
func (s *AdvisoryServiceImpl) GetAdvisory(ctx context.Context) (*domain.Advisory, error) {
	advisory, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get advisory: %w", err)
	}

	return advisory, nil
}

// RemoveAdvisory deletes the active advisory.
func (s *AdvisoryServiceImpl) RemoveAdvisory(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove advisory: %w", err)
	}

	return nil
}
