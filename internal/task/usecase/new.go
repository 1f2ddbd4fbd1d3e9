package usecase

import (
	"time"

	"pro-todo-backend/internal/sync"
	"pro-todo-backend/internal/task/repository"
	pkgLog "pro-todo-backend/pkg/log"
	"pro-todo-backend/pkg/quickparse"
	"pro-todo-backend/pkg/taskquery"
)

// Settings holds the capture behavior knobs from config.
type Settings struct {
	Location               *time.Location // timezone for date resolution and day boundaries
	DefaultDueHour         int            // hour-of-day for quick captures without a due date
	DefaultReminderMinutes int
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	parser    *quickparse.Parser
	evaluator *taskquery.Evaluator
	hub       *sync.Hub
	settings  Settings
	clock     func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *quickparse.Parser,
	evaluator *taskquery.Evaluator,
	hub *sync.Hub,
	settings Settings,
) *implUseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		parser:    parser,
		evaluator: evaluator,
		hub:       hub,
		settings:  settings,
		clock:     time.Now,
	}
}

// WithClock overrides the use case's clock. Tests use this to pin "now".
func (uc *implUseCase) WithClock(clock func() time.Time) *implUseCase {
	uc.clock = clock
	return uc
}

func (uc *implUseCase) now() time.Time {
	return uc.clock().In(uc.settings.Location)
}
