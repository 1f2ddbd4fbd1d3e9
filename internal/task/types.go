package task

import (
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/stats"
)

// QuickAddInput is the input for free-text task capture.
type QuickAddInput struct {
	Text string     // raw capture string (typed or dictated)
	Area model.Area // life area selected next to the capture field

	// SelectedDay is the calendar day currently selected in the client.
	// When the parser finds no due date, the task falls due on this day at
	// the configured default hour. Nil means today.
	SelectedDay *time.Time
}

// CreateInput is an explicit task draft.
type CreateInput struct {
	Title    string
	Tags     []string
	Project  string
	Area     model.Area
	Priority model.Priority
	Due      *time.Time
	Repeat   *model.RepeatRule
	Reminder int
	Notes    string
	Subtasks []model.Subtask
}

// ListInput holds list filtering parameters. A nil Query returns the full
// list (the calendar needs every task). A non-nil Query, including the
// empty string, goes through the saved-query evaluator, whose empty-query
// default view is the incomplete tasks.
type ListInput struct {
	Query *string
}

// UpdateInput is a partial patch: nil fields are left untouched. Clearing
// an optional field is requested explicitly.
type UpdateInput struct {
	Title       *string
	Notes       *string
	Project     *string
	Area        *model.Area
	Priority    *model.Priority
	Tags        *[]string
	Due         *time.Time
	ClearDue    bool
	Repeat      *model.RepeatRule
	ClearRepeat bool
	Reminder    *int
}

// RescheduleInput moves a task in time. Exactly one of Day or SnoozeMinutes
// is used; Day wins when both are set.
type RescheduleInput struct {
	Day           *time.Time // target calendar day; time-of-day is preserved
	SnoozeMinutes int        // offset from the current due (or now when none)
}

// ToggleOutput is the result of a completion toggle.
type ToggleOutput struct {
	Task    model.Task  // the toggled task
	Spawned *model.Task // next occurrence, when one was created
}

// State is the full exportable application state for one user.
type State struct {
	Tasks    []model.Task     `json:"tasks"`
	Projects []string         `json:"projects"`
	Points   int              `json:"points"`
	History  []stats.DayCount `json:"history"`
}

// ImportInput carries a previously exported state.
type ImportInput struct {
	State State
}

// ImportOutput reports how much of the state was restored.
type ImportOutput struct {
	Imported int
}
