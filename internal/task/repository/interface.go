package repository

import (
	"context"
	"errors"

	"pro-todo-backend/internal/model"
)

// ErrNotFound is returned when a task does not exist in the store.
var ErrNotFound = errors.New("repository: task not found")

// Repository is the interface for task persistence. Implementations assign
// identities and maintain createdAt/updatedAt; callers never set those.
type Repository interface {
	// Create stores a new task and returns it with identity and timestamps.
	Create(ctx context.Context, userID string, opt CreateTaskOptions) (model.Task, error)

	// Get returns one task by ID.
	Get(ctx context.Context, userID, id string) (model.Task, error)

	// List returns the user's tasks ordered by creation time, newest first.
	List(ctx context.Context, userID string) ([]model.Task, error)

	// Update merges the set fields of the patch and refreshes updatedAt.
	Update(ctx context.Context, userID, id string, opt UpdateTaskOptions) (model.Task, error)

	// Delete removes one task.
	Delete(ctx context.Context, userID, id string) error

	// DeleteAll removes every task the user owns.
	DeleteAll(ctx context.Context, userID string) error
}
