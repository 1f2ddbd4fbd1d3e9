package user

import (
	"context"

	"pro-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the user domain.
type UseCase interface {
	// Create registers a user under a readable slug id derived from the name.
	Create(ctx context.Context, input CreateInput) (model.User, error)

	// List returns every user, newest first.
	List(ctx context.Context) ([]model.User, error)

	// Detail returns a single user by ID.
	Detail(ctx context.Context, id string) (model.User, error)

	// Delete removes a user and every task they own.
	Delete(ctx context.Context, id string) error
}
