package auth

import (
	"context"
	"errors"
	"fmt"

	"quizhub/internal/entity"
)

var (
	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the slice of the user repository the auth flow needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (entity.User, error)
	Create(ctx context.Context, username, passwordHash string) (entity.User, error)
}

type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// LoginResult tags whether the login hit an existing account or lazily
// created a new one.
type LoginResult struct {
	User entity.User
	New  bool
}

// AuthenticateOrRegister is the combined login flow: a known username must
// present the matching password, an unknown username becomes a new
// non-admin account on the spot. Store failures come back wrapped, distinct
// from ErrInvalidCredentials.
func (s *Service) AuthenticateOrRegister(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, ErrEmptyCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if !CheckPassword(password, user.PasswordHash) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{User: user}, nil

	case errors.Is(err, entity.ErrUserNotFound):
		hash, err := HashPassword(password)
		if err != nil {
			return LoginResult{}, fmt.Errorf("hash password: %w", err)
		}
		created, err := s.users.Create(ctx, username, hash)
		if err != nil {
			return LoginResult{}, fmt.Errorf("create user: %w", err)
		}
		return LoginResult{User: created, New: true}, nil

	default:
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}
}
