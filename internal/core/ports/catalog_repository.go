package ports

import (
	"context"

	"github.com/sevakendra/portal-api/internal/core/domain"
)

// ServiceUpdate carries the mutable catalog fields for an in-place
// update. Nil pointers mean "keep the current value".
type ServiceUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
}

// ServiceRepository defines persistence operations for catalog entries.
type ServiceRepository interface {
	Insert(ctx context.Context, s *domain.Service) (*domain.Service, error)
	// ListActive returns entries with is_active = true, newest first.
	ListActive(ctx context.Context) ([]*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// Update applies upd to the entry and returns the updated record.
	// Fails with domain.ErrServiceNotFound when id does not resolve.
	Update(ctx context.Context, id string, upd ServiceUpdate) (*domain.Service, error)
	// Deactivate flips is_active to false, leaving all other fields intact.
	Deactivate(ctx context.Context, id string) error
}
