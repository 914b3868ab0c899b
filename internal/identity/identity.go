// Package identity handles user registration and sign-in. It exists so
// the session engine only ever sees a validated user ID; everything
// credential-shaped stays on this side of the boundary.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/quotienthq/quotient/internal/store"
)

// ErrInvalidCredentials is returned when the username or password
// doesn't match a registered user.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// Service registers and authenticates users against the store.
type Service struct {
	users store.UserRepo
}

// NewService creates an identity service over the given user repo.
func NewService(users store.UserRepo) *Service {
	return &Service{users: users}
}

// Register creates a new user with a bcrypt-hashed password and
// returns its ID.
func (s *Service) Register(ctx context.Context, username, password, email string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, errors.New("username must not be empty")
	}
	if password == "" {
		return 0, errors.New("password must not be empty")
	}

	existing, err := s.users.ByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, username, string(hash), strings.TrimSpace(email))
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Login verifies the credentials and returns the user's ID.
func (s *Service) Login(ctx context.Context, username, password string) (int, error) {
	u, err := s.users.ByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}
	return u.ID, nil
}
