package repository

import (
	"time"

	"pro-todo-backend/internal/model"
)

// CreateTaskOptions holds every caller-settable field of a new task.
type CreateTaskOptions struct {
	Title       string
	Tags        []string
	Project     string
	Area        model.Area
	Priority    model.Priority
	Due         *time.Time
	Repeat      *model.RepeatRule
	Reminder    int
	Completed   bool
	CompletedAt *time.Time
	Subtasks    []model.Subtask
	Notes       string
}

// UpdateTaskOptions is a merge patch. Nil pointer fields are not touched;
// the Clear* flags reset their optional counterparts to absent.
type UpdateTaskOptions struct {
	Title    *string
	Notes    *string
	Project  *string
	Area     *model.Area
	Priority *model.Priority
	Tags     *[]string
	Reminder *int
	Subtasks *[]model.Subtask

	Due      *time.Time
	ClearDue bool

	Repeat      *model.RepeatRule
	ClearRepeat bool

	Completed        *bool
	CompletedAt      *time.Time
	ClearCompletedAt bool
}
