package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "kainan/internal/errors"
	"kainan/internal/model"
	"kainan/internal/repository"
)

// ReserveRequest is a validated-at-the-service order request. Stall and
// UlamID are pointers because absence and the value 0 are different things:
// a reservation for stall 0 is legal, a reservation without a stall is not.
type ReserveRequest struct {
	Stall     *int
	UlamID    *string
	WithRice  bool
	UserEmail string
}

// ReservationService validates order requests, resolves prices and persists
// immutable reservation records.
type ReservationService interface {
	Reserve(ctx context.Context, req ReserveRequest) (*model.Reservation, error)
	History(ctx context.Context, email string) ([]model.Reservation, error)
}

type reservationService struct {
	userRepo        repository.UserRepository
	ulamRepo        repository.UlamRepository
	reservationRepo repository.ReservationRepository
	now             func() time.Time
}

// NewReservationService creates a new reservation service.
func NewReservationService(
	userRepo repository.UserRepository,
	ulamRepo repository.UlamRepository,
	reservationRepo repository.ReservationRepository,
) ReservationService {
	return &reservationService{
		userRepo:        userRepo,
		ulamRepo:        ulamRepo,
		reservationRepo: reservationRepo,
		now:             time.Now,
	}
}

// Reserve creates a reservation with the ulam name, customer name and price
// frozen at creation time. Later catalog price changes never touch it.
func (s *reservationService) Reserve(ctx context.Context, req ReserveRequest) (*model.Reservation, error) {
	if req.Stall == nil {
		return nil, apperrors.NewValidationError("stall is required")
	}
	if req.UlamID == nil || *req.UlamID == "" {
		return nil, apperrors.NewValidationError("ulamId is required")
	}
	if req.UserEmail == "" {
		return nil, apperrors.NewValidationError("userEmail is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.UserEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownUser
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	ulam, err := s.ulamRepo.FindByID(ctx, *req.UlamID)
	if err != nil {
		return nil, err
	}

	price, err := ulam.PriceFor(req.WithRice)
	if err != nil {
		return nil, apperrors.ErrNoPriceConfigured
	}

	now := s.now()
	reservation := &model.Reservation{
		ID:        now.UnixMilli(),
		Stall:     *req.Stall,
		UlamID:    ulam.ID,
		UlamName:  ulam.Name,
		Price:     price,
		WithRice:  req.WithRice,
		UserName:  user.FullName(),
		UserEmail: req.UserEmail,
		CreatedAt: now,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("save reservation: %w", err)
	}
	return reservation, nil
}

// History returns a user's reservations, newest first.
func (s *reservationService) History(ctx context.Context, email string) ([]model.Reservation, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	return s.reservationRepo.ListByEmail(ctx, email)
}
