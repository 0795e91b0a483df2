package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

// CatalogService manages the set of offerable services.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListActive returns active catalog entries, newest first. Deactivated
// entries are excluded but never physically removed.
func (s *CatalogService) ListActive(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.ListActive(ctx)
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	if input.Name == "" || input.Description == "" {
		return nil, domain.NewValidationError("Please provide name and description")
	}

	entry := &domain.Service{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if entry.Icon == "" {
		entry.Icon = domain.DefaultServiceIcon
	}
	if entry.Color == "" {
		entry.Color = domain.DefaultServiceColor
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

// Update overwrites the mutable display fields of an existing entry.
// Absent fields keep their stored value; IsActive is never touched here.
func (s *CatalogService) Update(ctx context.Context, id string, input ports.UpdateServiceInput) (*domain.Service, error) {
	updated, err := s.repo.Update(ctx, id, ports.ServiceUpdate{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("service_id", id).Msg("service updated")
	return updated, nil
}

// Deactivate soft-deletes an entry: it disappears from ListActive but
// stays retrievable by id.
func (s *CatalogService) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("service_id", id).Msg("service deactivated")
	return nil
}
