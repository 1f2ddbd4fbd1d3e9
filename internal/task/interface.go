package task

import (
	"context"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/sync"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// QuickAdd parses one free-text capture string into a task and persists it.
	QuickAdd(ctx context.Context, userID string, input QuickAddInput) (model.Task, error)

	// Create persists an explicit task draft.
	Create(ctx context.Context, userID string, input CreateInput) (model.Task, error)

	// List returns the user's tasks, optionally filtered by a saved query.
	List(ctx context.Context, userID string, input ListInput) ([]model.Task, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, userID, id string) (model.Task, error)

	// Update merges the set fields of a partial patch into a task.
	Update(ctx context.Context, userID, id string, input UpdateInput) (model.Task, error)

	// Delete removes a task permanently.
	Delete(ctx context.Context, userID, id string) error

	// ToggleCompletion flips completion state. Completing a recurring task
	// also spawns its next occurrence as a fresh task.
	ToggleCompletion(ctx context.Context, userID, id string) (ToggleOutput, error)

	// Reschedule moves a task's due date to another calendar day, keeping
	// its time-of-day, or snoozes it by a number of minutes.
	Reschedule(ctx context.Context, userID, id string, input RescheduleInput) (model.Task, error)

	// Subtask operations.
	AddSubtask(ctx context.Context, userID, id, title string) (model.Task, error)
	ToggleSubtask(ctx context.Context, userID, id, subtaskID string) (model.Task, error)
	RemoveSubtask(ctx context.Context, userID, id, subtaskID string) (model.Task, error)

	// ExportICS renders one task as an iCalendar VEVENT block.
	ExportICS(ctx context.Context, userID, id string) (string, error)

	// Export returns the user's full application state for backup.
	Export(ctx context.Context, userID string) (State, error)

	// Import recreates tasks from an exported state. Identities and store
	// timestamps are reassigned; everything else round-trips.
	Import(ctx context.Context, userID string, input ImportInput) (ImportOutput, error)

	// Subscribe opens a live feed of full task-list snapshots, seeded with
	// the current list.
	Subscribe(ctx context.Context, userID string) (*sync.Subscription, []model.Task, error)
}
