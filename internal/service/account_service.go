package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "kainan/internal/errors"
	"kainan/internal/model"
	"kainan/internal/repository"
)

const (
	// emailDomain is the institutional suffix every account email must carry.
	emailDomain = "@cvsu.edu.ph"

	minPasswordLength = 6
)

// AccountService handles signup, login and profile lookup.
//
// Passwords are stored and compared as plaintext. That is the wire contract
// inherited from the original deployment: login succeeds only on an exact
// (email, password) pair and no token or session is ever issued, so clients
// re-submit credentials on every request that needs identity.
type AccountService interface {
	Signup(ctx context.Context, firstName, lastName, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Get(ctx context.Context, email string) (*model.User, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type accountService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewAccountService creates a new account service.
func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{userRepo: userRepo, now: time.Now}
}

// Signup validates and creates a new user account.
func (s *accountService) Signup(ctx context.Context, firstName, lastName, email, password string) (*model.User, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("all fields are required")
	}
	if !strings.HasSuffix(email, emailDomain) {
		return nil, apperrors.NewValidationError("email must end with %s", emailDomain)
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least %d characters", minPasswordLength)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("check account existence: %w", err)
	}

	now := s.now()
	user := &model.User{
		ID:        now.UnixMilli(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		CreatedAt: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns the record with the password stripped.
func (s *accountService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Password != password {
		return nil, apperrors.ErrInvalidCredentials
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Get returns a user's profile without the password.
func (s *accountService) Get(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// EnsureAdmin guarantees the fixed administrative account exists. It runs at
// startup and in cmd/seed; losing the race against a concurrent bootstrap is
// fine because the record is then already present.
func (s *accountService) EnsureAdmin(ctx context.Context, email, password string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	now := s.now()
	admin := &model.User{
		ID:        now.UnixMilli(),
		FirstName: "Cafeteria",
		LastName:  "Admin",
		Email:     email,
		Password:  password,
		CreatedAt: now,
	}
	err := s.userRepo.Create(ctx, admin)
	if errors.Is(err, apperrors.ErrEmailTaken) {
		return nil
	}
	return err
}
