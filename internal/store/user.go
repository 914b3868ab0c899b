package store

import (
	"context"
	"fmt"
	"time"

	"github.com/quotienthq/quotient/ent"
	"github.com/quotienthq/quotient/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, username, passwordHash, email string) (*User, error) {
	u, err := r.client.User.Create().
		SetUsername(username).
		SetPassword(passwordHash).
		SetEmail(email).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) ByUsername(ctx context.Context, username string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) ByID(ctx context.Context, id int) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return entUserToUser(u), nil
}

func entUserToUser(u *ent.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
