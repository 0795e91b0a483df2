package ports

import (
	"context"

	"github.com/sevakendra/portal-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Create must fail with domain.ErrUserExists when the phone number is
// already taken; uniqueness is the store's responsibility.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
}
