package usecase

import (
	"context"
	"fmt"
	"time"

	"pro-todo-backend/internal/stats"
	"pro-todo-backend/internal/task/repository"
	pkgLog "pro-todo-backend/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock func() time.Time
}

// New creates a stats UseCase reading from the task repository.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo, clock: time.Now}
}

// NewWithClock creates a stats UseCase with an injected clock for tests.
func NewWithClock(l pkgLog.Logger, repo repository.Repository, clock func() time.Time) *implUseCase {
	return &implUseCase{l: l, repo: repo, clock: clock}
}

func (uc *implUseCase) Summary(ctx context.Context, userID string) (stats.Summary, error) {
	tasks, err := uc.repo.List(ctx, userID)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("failed to list tasks for stats: %w", err)
	}

	now := uc.clock()
	return stats.Summary{
		Points:  stats.Points(tasks),
		Today:   stats.Today(tasks, now),
		History: stats.History(tasks, now, stats.HistoryDays),
	}, nil
}
