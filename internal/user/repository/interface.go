package repository

import (
	"context"
	"errors"

	"pro-todo-backend/internal/model"
)

// ErrNotFound is returned when no user matches the given ID.
var ErrNotFound = errors.New("user not found")

// CreateUserOptions holds the fields of a new user. The ID is assigned by
// the use case before the call.
type CreateUserOptions struct {
	ID   string
	Name string
}

// Repository is the user persistence interface.
type Repository interface {
	Create(ctx context.Context, opt CreateUserOptions) (model.User, error)
	Get(ctx context.Context, id string) (model.User, error)

	// List returns every user, newest first.
	List(ctx context.Context) ([]model.User, error)

	Delete(ctx context.Context, id string) error

	// Exists reports whether a user with this ID already exists. The use
	// case uses it to pick a free slug.
	Exists(ctx context.Context, id string) (bool, error)
}
