package service

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

type stubRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*domain.Request
	byRegNo  map[string]string
	nextID   int
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{
		requests: make(map[string]*domain.Request),
		byRegNo:  make(map[string]string),
	}
}

func (r *stubRequestRepo) Insert(_ context.Context, req *domain.Request) (*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byRegNo[req.RegistrationNo]; exists {
		return nil, domain.ErrDuplicateRegistration
	}
	r.nextID++
	clone := *req
	clone.ID = strconv.Itoa(r.nextID)
	r.requests[clone.ID] = &clone
	r.byRegNo[clone.RegistrationNo] = clone.ID
	out := clone
	return &out, nil
}

func (r *stubRequestRepo) List(_ context.Context) ([]*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Request
	for _, req := range r.requests {
		clone := *req
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (r *stubRequestRepo) ListByPhone(_ context.Context, phone string) ([]*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Request
	for _, req := range r.requests {
		if req.UserPhone == phone {
			clone := *req
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (r *stubRequestRepo) FindByRegistrationNo(_ context.Context, regNo string) (*domain.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byRegNo[regNo]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := *r.requests[id]
	return &clone, nil
}

func (r *stubRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
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

func submitInput() ports.SubmitRequestInput {
	return ports.SubmitRequestInput{
		UserName:    "Asha",
		UserPhone:   "9876543210",
		ServiceName: "PAN Card",
		ServiceID:   "2",
	}
}

var registrationNoPattern = regexp.MustCompile(`^REG\d+$`)

func TestRequestService_Submit_GeneratesRegistrationNo(t *testing.T) {
	svc := NewRequestService(newStubRequestRepo(), nil, zerolog.Nop())

	created, err := svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !registrationNoPattern.MatchString(created.RegistrationNo) {
		t.Fatalf("registration number %q does not match REG<digits>", created.RegistrationNo)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
}

func TestRequestService_Submit_Validation(t *testing.T) {
	svc := NewRequestService(newStubRequestRepo(), nil, zerolog.Nop())

	cases := []ports.SubmitRequestInput{
		{UserPhone: "9876543210", ServiceName: "PAN Card", ServiceID: "2"},
		{UserName: "Asha", ServiceName: "PAN Card", ServiceID: "2"},
		{UserName: "Asha", UserPhone: "9876543210", ServiceID: "2"},
		{UserName: "Asha", UserPhone: "9876543210", ServiceName: "PAN Card"},
	}
	for i, input := range cases {
		_, err := svc.Submit(context.Background(), input)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestRequestService_Submit_CallerSuppliedRegistrationNo(t *testing.T) {
	svc := NewRequestService(newStubRequestRepo(), nil, zerolog.Nop())

	input := submitInput()
	input.RegistrationNo = "REG123456789"
	created, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if created.RegistrationNo != "REG123456789" {
		t.Fatalf("caller-supplied registration number not used verbatim: %q", created.RegistrationNo)
	}

	// A second submission with the same number collides at the store.
	if _, err := svc.Submit(context.Background(), input); !errors.Is(err, domain.ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestRequestService_Submit_ConcurrentUniqueness(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, nil, zerolog.Nop())

	const n = 1000
	seen := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := svc.Submit(context.Background(), submitInput())
			if err != nil {
				t.Errorf("Submit failed: %v", err)
				return
			}
			seen <- created.RegistrationNo
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[string]struct{}, n)
	for regNo := range seen {
		unique[regNo] = struct{}{}
	}
	if len(unique) != n {
		t.Fatalf("expected %d distinct registration numbers, got %d", n, len(unique))
	}
}

func TestGenerateRegistrationNo_SameInstantDistinct(t *testing.T) {
	// A tight loop lands thousands of draws in the same millisecond, so
	// uniqueness here depends entirely on the width of the random suffix.
	const n = 100000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		regNo := generateRegistrationNo()
		if !registrationNoPattern.MatchString(regNo) {
			t.Fatalf("malformed registration number %q", regNo)
		}
		if _, dup := seen[regNo]; dup {
			t.Fatalf("duplicate registration number %q after %d draws", regNo, i)
		}
		seen[regNo] = struct{}{}
	}
}

func TestRequestService_Track(t *testing.T) {
	svc := NewRequestService(newStubRequestRepo(), nil, zerolog.Nop())

	created, err := svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	found, err := svc.Track(context.Background(), created.RegistrationNo)
	if err != nil {
		t.Fatalf("Track returned error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("Track returned wrong record: %+v", found)
	}

	if _, err := svc.Track(context.Background(), "REG0000000000"); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestRequestService_UpdateStatus(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, nil, zerolog.Nop())

	created, _ := svc.Submit(context.Background(), submitInput())

	updated, err := svc.UpdateStatus(context.Background(), created.ID, "approved")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("updated_at not refreshed: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}

	// Transitions are not forward-only: completed back to pending is fine.
	if _, err := svc.UpdateStatus(context.Background(), created.ID, "completed"); err != nil {
		t.Fatalf("completed transition failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), created.ID, "pending"); err != nil {
		t.Fatalf("backwards transition failed: %v", err)
	}
}

func TestRequestService_UpdateStatus_InvalidEnum(t *testing.T) {
	repo := newStubRequestRepo()
	svc := NewRequestService(repo, nil, zerolog.Nop())

	created, _ := svc.Submit(context.Background(), submitInput())

	_, err := svc.UpdateStatus(context.Background(), created.ID, "shipped")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// The stored status must be untouched after the rejected update.
	stored, _ := repo.FindByRegistrationNo(context.Background(), created.RegistrationNo)
	if stored.Status != domain.StatusPending {
		t.Fatalf("stored status mutated by invalid update: %s", stored.Status)
	}
}

func TestRequestService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewRequestService(newStubRequestRepo(), nil, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "missing", "approved"); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestRequestService_ListByPhone(t *testing.T) {
	svc := NewRequestService(newStubRequestRepo(), nil, zerolog.Nop())

	first := submitInput()
	second := submitInput()
	second.UserPhone = "9000000000"
	_, _ = svc.Submit(context.Background(), first)
	_, _ = svc.Submit(context.Background(), second)

	mine, err := svc.ListByPhone(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("ListByPhone returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].UserPhone != "9876543210" {
		t.Fatalf("unexpected filter result: %+v", mine)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(all))
	}
}

type stubTrackingCache struct {
	mu      sync.Mutex
	entries map[string]*domain.Request
	gets    int
	hits    int
}

func newStubTrackingCache() *stubTrackingCache {
	return &stubTrackingCache{entries: make(map[string]*domain.Request)}
}

func (c *stubTrackingCache) Get(_ context.Context, regNo string) (*domain.Request, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if r, ok := c.entries[regNo]; ok {
		c.hits++
		clone := *r
		return &clone, nil
	}
	return nil, nil
}

func (c *stubTrackingCache) Set(_ context.Context, r *domain.Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := *r
	c.entries[r.RegistrationNo] = &clone
	return nil
}

func (c *stubTrackingCache) Invalidate(_ context.Context, regNo string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, regNo)
	return nil
}

func TestRequestService_Track_CacheReadThrough(t *testing.T) {
	cache := newStubTrackingCache()
	svc := NewRequestService(newStubRequestRepo(), cache, zerolog.Nop())

	created, _ := svc.Submit(context.Background(), submitInput())

	// First lookup misses and populates; second hits.
	if _, err := svc.Track(context.Background(), created.RegistrationNo); err != nil {
		t.Fatalf("first Track failed: %v", err)
	}
	if _, err := svc.Track(context.Background(), created.RegistrationNo); err != nil {
		t.Fatalf("second Track failed: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}

	// A status update invalidates the snapshot so the next Track sees
	// the fresh status.
	if _, err := svc.UpdateStatus(context.Background(), created.ID, "approved"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	fresh, err := svc.Track(context.Background(), created.RegistrationNo)
	if err != nil {
		t.Fatalf("Track after update failed: %v", err)
	}
	if fresh.Status != domain.StatusApproved {
		t.Fatalf("stale status after invalidation: %s", fresh.Status)
	}
}
