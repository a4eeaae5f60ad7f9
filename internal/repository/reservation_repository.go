package repository

import (
	"context"
	"sort"
	"time"

	"kainan/internal/model"
	"kainan/internal/store"
)

const reserveCollection = "reserve"

// ReservationRepository defines persistence operations for the append-only
// reservation collection.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	List(ctx context.Context) ([]model.Reservation, error)
	// ListByEmail returns a user's reservations newest-first; records with
	// equal timestamps keep their insertion order.
	ListByEmail(ctx context.Context, email string) ([]model.Reservation, error)
	CountByStall(ctx context.Context) (map[int]int, error)
	CreatedSince(ctx context.Context, cutoff time.Time) ([]model.Reservation, error)
}

type reservationRepository struct {
	store *store.Store
}

// NewReservationRepository builds a file-store-backed repository.
func NewReservationRepository(s *store.Store) ReservationRepository {
	return &reservationRepository{store: s}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	var reservations []model.Reservation
	return r.store.Update(reserveCollection, &reservations, func() error {
		reservations = append(reservations, *reservation)
		return nil
	})
}

func (r *reservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.store.Load(reserveCollection, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) ListByEmail(ctx context.Context, email string) ([]model.Reservation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.Reservation, 0)
	for _, res := range all {
		if res.UserEmail == email {
			matched = append(matched, res)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *reservationRepository) CountByStall(ctx context.Context) (map[int]int, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, res := range all {
		counts[res.Stall]++
	}
	return counts, nil
}

func (r *reservationRepository) CreatedSince(ctx context.Context, cutoff time.Time) ([]model.Reservation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	recent := make([]model.Reservation, 0)
	for _, res := range all {
		if !res.CreatedAt.Before(cutoff) {
			recent = append(recent, res)
		}
	}
	return recent, nil
}
