package usecase

import (
	"context"
	"fmt"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/sync"
)

// Subscribe opens a live feed for the user and returns the current task
// list as the initial snapshot.
func (uc *implUseCase) Subscribe(ctx context.Context, userID string) (*sync.Subscription, []model.Task, error) {
	tasks, err := uc.repo.List(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	sub := uc.hub.Subscribe(userID)
	uc.l.Debugf(ctx, "Subscribe: user=%s tasks=%d", userID, len(tasks))
	return sub, tasks, nil
}
