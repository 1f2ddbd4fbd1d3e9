package user

import "errors"

var (
	// ErrEmptyName is returned when the user name is blank.
	ErrEmptyName = errors.New("user name must not be empty")

	// ErrNotFound is returned when no user matches the given ID.
	ErrNotFound = errors.New("user not found")
)
