package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

// TrackingCache abstracts the read-through cache in front of the public
// tracking endpoint. Implementations must treat failures as soft: a
// cache error never fails the lookup.
type TrackingCache interface {
	Get(ctx context.Context, registrationNo string) (*domain.Request, error)
	Set(ctx context.Context, r *domain.Request) error
	Invalidate(ctx context.Context, registrationNo string) error
}

// RequestService manages the citizen application lifecycle.
type RequestService struct {
	repo   ports.RequestRepository
	cache  TrackingCache // optional, nil when Redis is not configured
	logger zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, cache TrackingCache, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, cache: cache, logger: logger}
}

// Submit creates a new application. Status is forced to pending
// regardless of caller input; a registration number is synthesized when
// the caller does not supply one. Caller-supplied numbers are used
// verbatim and collide at the store's unique index, surfacing as
// domain.ErrDuplicateRegistration.
func (s *RequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*domain.Request, error) {
	if input.UserName == "" || input.UserPhone == "" || input.ServiceName == "" || input.ServiceID == "" {
		return nil, domain.NewValidationError("Please provide all required fields")
	}

	registrationNo := input.RegistrationNo
	if registrationNo == "" {
		registrationNo = generateRegistrationNo()
	}

	now := time.Now().UTC()
	request := &domain.Request{
		UserName:       input.UserName,
		UserPhone:      input.UserPhone,
		ServiceName:    input.ServiceName,
		ServiceID:      input.ServiceID,
		AadharNumber:   input.AadharNumber,
		Address:        input.Address,
		RegistrationNo: registrationNo,
		Status:         domain.StatusPending,
		SubmittedAt:    now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Insert(ctx, request)
	if err != nil {
		s.logger.Error().Err(err).Str("registration_no", registrationNo).Msg("failed to submit request")
		return nil, err
	}

	s.logger.Info().
		Str("registration_no", created.RegistrationNo).
		Str("service", created.ServiceName).
		Msg("request submitted")

	return created, nil
}

func (s *RequestService) ListAll(ctx context.Context) ([]*domain.Request, error) {
	return s.repo.List(ctx)
}

func (s *RequestService) ListByPhone(ctx context.Context, phone string) ([]*domain.Request, error) {
	return s.repo.ListByPhone(ctx, phone)
}

// Track resolves a single application by its registration number,
// consulting the cache first when one is configured.
func (s *RequestService) Track(ctx context.Context, registrationNo string) (*domain.Request, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, registrationNo)
		if err != nil {
			s.logger.Warn().Err(err).Str("registration_no", registrationNo).Msg("tracking cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	request, err := s.repo.FindByRegistrationNo(ctx, registrationNo)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, request); err != nil {
			s.logger.Warn().Err(err).Str("registration_no", registrationNo).Msg("tracking cache write failed")
		}
	}
	return request, nil
}

// UpdateStatus overwrites the status of an application and refreshes
// its updated_at timestamp. Any of the four statuses may follow any
// other; only enum membership is validated.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Request, error) {
	next := domain.RequestStatus(status)
	if !next.IsValid() {
		return nil, domain.NewValidationError("Invalid status")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, updated.RegistrationNo); err != nil {
			s.logger.Warn().Err(err).Str("registration_no", updated.RegistrationNo).Msg("tracking cache invalidation failed")
		}
	}

	s.logger.Info().
		Str("request_id", id).
		Str("status", status).
		Msg("request status updated")

	return updated, nil
}

// generateRegistrationNo returns a tracking number in the format
// REG<unix_millis><random digits>. The suffix spans the full 64-bit
// random space so submissions in the same millisecond stay distinct;
// the store's unique index is the final arbiter.
func generateRegistrationNo() string {
	millis := time.Now().UnixMilli()
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("REG%d%d", millis, time.Now().UnixNano())
	}
	return fmt.Sprintf("REG%d%d", millis, binary.BigEndian.Uint64(b))
}
