package repository

import (
	"context"
	"strconv"

	apperrors "kainan/internal/errors"
	"kainan/internal/model"
	"kainan/internal/store"
)

const ulamsCollection = "ulams"

// UlamRepository exposes the read-only menu item collection.
type UlamRepository interface {
	List(ctx context.Context) ([]model.Ulam, error)
	// FindByID matches ids by their decimal string rendering so that clients
	// sending "3" and 3 both resolve the same record.
	FindByID(ctx context.Context, id string) (*model.Ulam, error)
	ReplaceAll(ctx context.Context, ulams []model.Ulam) error
}

type ulamRepository struct {
	store *store.Store
}

// NewUlamRepository builds a file-store-backed repository.
func NewUlamRepository(s *store.Store) UlamRepository {
	return &ulamRepository{store: s}
}

func (r *ulamRepository) List(ctx context.Context) ([]model.Ulam, error) {
	var ulams []model.Ulam
	if err := r.store.Load(ulamsCollection, &ulams); err != nil {
		return nil, err
	}
	return ulams, nil
}

func (r *ulamRepository) FindByID(ctx context.Context, id string) (*model.Ulam, error) {
	ulams, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ulams {
		if strconv.FormatInt(ulams[i].ID, 10) == id {
			u := ulams[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUlamNotFound
}

// ReplaceAll overwrites the whole menu. Used by seeding only.
func (r *ulamRepository) ReplaceAll(ctx context.Context, ulams []model.Ulam) error {
	return r.store.Save(ulamsCollection, ulams)
}
