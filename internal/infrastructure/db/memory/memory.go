// Package memory provides mutex-guarded in-memory implementations of
// the repository ports. The backend is non-durable: it exists for local
// development runs (STORE=memory) and for exercising the HTTP layer in
// tests without a MongoDB instance.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

// UserRepository is an in-memory ports.UserRepository keyed by phone.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // phone -> user
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Phone]; exists {
		return nil, domain.ErrUserExists
	}

	clone := *user
	clone.ID = uuid.NewString()
	r.users[clone.Phone] = &clone

	out := clone
	return &out, nil
}

func (r *UserRepository) FindByPhone(_ context.Context, phone string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[phone]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// ServiceRepository is an in-memory ports.ServiceRepository.
type ServiceRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.Service
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{entries: make(map[string]*domain.Service)}
}

func (r *ServiceRepository) Insert(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *s
	clone.ID = uuid.NewString()
	r.entries[clone.ID] = &clone

	out := clone
	return &out, nil
}

func (r *ServiceRepository) ListActive(_ context.Context) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Service
	for _, s := range r.entries {
		if s.IsActive {
			clone := *s
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ServiceRepository) FindByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *ServiceRepository) Update(_ context.Context, id string, upd ports.ServiceUpdate) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Icon != nil {
		s.Icon = *upd.Icon
	}
	if upd.Color != nil {
		s.Color = *upd.Color
	}
	clone := *s
	return &clone, nil
}

func (r *ServiceRepository) Deactivate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.entries[id]
	if !ok {
		return domain.ErrServiceNotFound
	}
	s.IsActive = false
	return nil
}

// RequestRepository is an in-memory ports.RequestRepository enforcing
// registration-number uniqueness under its lock, mirroring the unique
// index the Mongo backend relies on.
type RequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.Request
	byRegNo  map[string]string // registration_no -> id
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{
		requests: make(map[string]*domain.Request),
		byRegNo:  make(map[string]string),
	}
}

func (r *RequestRepository) Insert(_ context.Context, req *domain.Request) (*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byRegNo[req.RegistrationNo]; exists {
		return nil, domain.ErrDuplicateRegistration
	}

	clone := *req
	clone.ID = uuid.NewString()
	r.requests[clone.ID] = &clone
	r.byRegNo[clone.RegistrationNo] = clone.ID

	out := clone
	return &out, nil
}

func (r *RequestRepository) List(_ context.Context) ([]*domain.Request, error) {
	return r.filtered(func(*domain.Request) bool { return true }), nil
}

func (r *RequestRepository) ListByPhone(_ context.Context, phone string) ([]*domain.Request, error) {
	return r.filtered(func(req *domain.Request) bool { return req.UserPhone == phone }), nil
}

func (r *RequestRepository) filtered(keep func(*domain.Request) bool) []*domain.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Request
	for _, req := range r.requests {
		if keep(req) {
			clone := *req
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out
}

func (r *RequestRepository) FindByRegistrationNo(_ context.Context, registrationNo string) (*domain.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byRegNo[registrationNo]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := *r.requests[id]
	return &clone, nil
}

func (r *RequestRepository) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now().UTC()
	clone := *req
	return &clone, nil
}
