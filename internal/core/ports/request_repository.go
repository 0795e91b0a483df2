package ports

import (
	"context"

	"github.com/sevakendra/portal-api/internal/core/domain"
)

// RequestRepository defines persistence operations for citizen
// applications. Insert must fail with domain.ErrDuplicateRegistration
// when the registration number is already taken.
type RequestRepository interface {
	Insert(ctx context.Context, r *domain.Request) (*domain.Request, error)
	// List returns all requests ordered by submitted_at descending.
	List(ctx context.Context) ([]*domain.Request, error)
	// ListByPhone returns requests with the given user phone, same ordering.
	ListByPhone(ctx context.Context, phone string) ([]*domain.Request, error)
	FindByRegistrationNo(ctx context.Context, registrationNo string) (*domain.Request, error)
	// UpdateStatus overwrites status and refreshes updated_at, returning
	// the updated record. Fails with domain.ErrRequestNotFound when id
	// does not resolve.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error)
}
