package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

type stubServiceRepo struct {
	entries map[string]*domain.Service
	nextID  int
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{entries: make(map[string]*domain.Service)}
}

func (r *stubServiceRepo) Insert(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.nextID++
	clone := *s
	clone.ID = strconv.Itoa(r.nextID)
	r.entries[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubServiceRepo) ListActive(_ context.Context) ([]*domain.Service, error) {
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

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) Update(_ context.Context, id string, upd ports.ServiceUpdate) (*domain.Service, error) {
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

func (r *stubServiceRepo) Deactivate(_ context.Context, id string) error {
	s, ok := r.entries[id]
	if !ok {
		return domain.ErrServiceNotFound
	}
	s.IsActive = false
	return nil
}

func strptr(s string) *string { return &s }

func TestCatalogService_Create_Defaults(t *testing.T) {
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateServiceInput{
		Name:        "PAN Card",
		Description: "Apply for new PAN card",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Icon != domain.DefaultServiceIcon {
		t.Fatalf("expected default icon, got %q", created.Icon)
	}
	if created.Color != domain.DefaultServiceColor {
		t.Fatalf("expected default color, got %q", created.Color)
	}
	if !created.IsActive {
		t.Fatalf("new service must be active")
	}
}

func TestCatalogService_Create_Validation(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateServiceInput{Name: "PAN Card"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing description, got %v", err)
	}

	_, err = svc.Create(context.Background(), ports.CreateServiceInput{Description: "something"})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing name, got %v", err)
	}
}

func TestCatalogService_Update_PartialFields(t *testing.T) {
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateServiceInput{
		Name:        "Voter ID",
		Description: "Voter ID services",
		Icon:        "🗳️",
		Color:       "#FF5722",
	})

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateServiceInput{
		Description: strptr("Voter ID card services"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Description != "Voter ID card services" {
		t.Fatalf("description not updated: %q", updated.Description)
	}
	if updated.Name != "Voter ID" || updated.Icon != "🗳️" || updated.Color != "#FF5722" {
		t.Fatalf("absent fields were overwritten: %+v", updated)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateServiceInput{Name: strptr("x")}); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestCatalogService_Deactivate_SoftDelete(t *testing.T) {
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateServiceInput{
		Name:        "Passport",
		Description: "Passport services",
	})

	if err := svc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	for _, s := range active {
		if s.ID == created.ID {
			t.Fatalf("deactivated service still listed as active")
		}
	}

	// Soft delete: still retrievable by direct lookup.
	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("deactivated service no longer retrievable: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("expected is_active=false after deactivation")
	}
	if stored.Name != "Passport" {
		t.Fatalf("deactivation mutated other fields: %+v", stored)
	}
}

func TestCatalogService_Deactivate_NotFound(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo(), zerolog.Nop())

	if err := svc.Deactivate(context.Background(), "missing"); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}
