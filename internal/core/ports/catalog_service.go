package ports

import (
	"context"

	"github.com/sevakendra/portal-api/internal/core/domain"
)

// CreateServiceInput carries the data for a new catalog entry. Icon and
// Color fall back to the domain defaults when empty.
type CreateServiceInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
}

// UpdateServiceInput carries a partial update for an existing entry.
// Nil fields are left unchanged.
type UpdateServiceInput struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
}

// CatalogService defines use-case operations for the service catalog.
type CatalogService interface {
	ListActive(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, input UpdateServiceInput) (*domain.Service, error)
	Deactivate(ctx context.Context, id string) error
}
