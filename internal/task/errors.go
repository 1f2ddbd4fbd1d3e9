package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrNotFound        = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrNothingToUpdate = errors.New("no fields to update")
)
