package ports

import (
	"context"

	"github.com/sevakendra/portal-api/internal/core/domain"
)

// SubmitRequestInput carries all data needed to submit an application.
// RegistrationNo is optional: when empty the service synthesizes one.
type SubmitRequestInput struct {
	UserName       string
	UserPhone      string
	ServiceName    string
	ServiceID      string
	AadharNumber   string
	Address        string
	RegistrationNo string
}

// RequestService defines use-case operations for the application
// lifecycle.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*domain.Request, error)
	ListAll(ctx context.Context) ([]*domain.Request, error)
	ListByPhone(ctx context.Context, phone string) ([]*domain.Request, error)
	Track(ctx context.Context, registrationNo string) (*domain.Request, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Request, error)
}
