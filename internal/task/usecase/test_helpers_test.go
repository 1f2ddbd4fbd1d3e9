package usecase_test

import (
	"context"
	"time"

	"pro-todo-backend/internal/sync"
	"pro-todo-backend/internal/task"
	"pro-todo-backend/internal/task/repository"
	"pro-todo-backend/internal/task/repository/memory"
	"pro-todo-backend/internal/task/usecase"
	"pro-todo-backend/pkg/quickparse"
	"pro-todo-backend/pkg/taskquery"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// testNow is the pinned clock for all use-case tests: a Wednesday at noon UTC.
var testNow = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

// newTestUC builds a use case over a fresh in-memory store with a pinned
// clock and default settings.
func newTestUC() (task.UseCase, repository.Repository) {
	repo := memory.NewWithClock(func() time.Time { return testNow })
	uc := usecase.New(
		&mockLogger{},
		repo,
		quickparse.New(),
		taskquery.New(),
		sync.NewHub(&mockLogger{}),
		usecase.Settings{
			Location:               time.UTC,
			DefaultDueHour:         17,
			DefaultReminderMinutes: 30,
		},
	).WithClock(func() time.Time { return testNow })
	return uc, repo
}
