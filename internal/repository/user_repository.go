package repository

import (
	"context"

	apperrors "kainan/internal/errors"
	"kainan/internal/model"
	"kainan/internal/store"
)

const usersCollection = "users"

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	store *store.Store
}

// NewUserRepository builds a file-store-backed repository.
func NewUserRepository(s *store.Store) UserRepository {
	return &userRepository{store: s}
}

// Create appends a user. Email uniqueness is re-checked inside the
// collection lock so racing signups cannot both win.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	var users []model.User
	return r.store.Update(usersCollection, &users, func() error {
		for _, u := range users {
			if u.Email == user.Email {
				return apperrors.ErrEmailTaken
			}
		}
		users = append(users, *user)
		return nil
	})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var users []model.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	users, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
