package model

import "time"

// DefaultProject is assigned when a task has no explicit project.
const DefaultProject = "Inbox"

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Area is the life area a task belongs to.
type Area string

const (
	AreaPersonal Area = "Personal"
	AreaWork     Area = "Work"
)

// Valid reports whether a is one of the known areas.
func (a Area) Valid() bool {
	return a == AreaPersonal || a == AreaWork
}

// RepeatType distinguishes the recurrence rule variants.
type RepeatType string

const (
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

// RepeatRule describes how a task recurs. A weekly rule may be pinned to a
// specific weekday (lowercase English name, e.g. "monday"); other types
// leave Weekday empty.
type RepeatRule struct {
	Type    RepeatType `json:"type" firestore:"type"`
	Weekday string     `json:"weekday,omitempty" firestore:"weekday,omitempty"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[name]
	return wd, ok
}

// Subtask is a single checklist entry inside a task.
type Subtask struct {
	ID    string `json:"id" firestore:"id"`
	Title string `json:"title" firestore:"title"`
	Done  bool   `json:"done" firestore:"done"`
}

// Task is the central entity of the service.
//
// Invariants maintained by the use-case layer:
//   - Title is non-empty after trimming.
//   - Tags holds no duplicates.
//   - CompletedAt is non-nil iff Completed is true.
//   - Repeat is nil or carries a valid RepeatType.
type Task struct {
	ID          string      `json:"id" firestore:"-"`
	Title       string      `json:"title" firestore:"title"`
	Tags        []string    `json:"tags" firestore:"tags"`
	Project     string      `json:"project" firestore:"project"`
	Area        Area        `json:"area" firestore:"area"`
	Priority    Priority    `json:"priority" firestore:"priority"`
	Due         *time.Time  `json:"due,omitempty" firestore:"due"`
	Repeat      *RepeatRule `json:"repeat,omitempty" firestore:"repeat"`
	Reminder    int         `json:"reminder" firestore:"reminder"`
	Completed   bool        `json:"completed" firestore:"completed"`
	CompletedAt *time.Time  `json:"completedAt,omitempty" firestore:"completedAt"`
	Subtasks    []Subtask   `json:"subtasks,omitempty" firestore:"subtasks"`
	Notes       string      `json:"notes,omitempty" firestore:"notes"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time   `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
