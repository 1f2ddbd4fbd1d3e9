package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task"
	"pro-todo-backend/internal/task/repository"
)

// Reschedule moves a task to another day or snoozes it by a number of
// minutes. A day move keeps the task's time-of-day; a task without a due
// date lands at midnight of the target day.
func (uc *implUseCase) Reschedule(ctx context.Context, userID, id string, input task.RescheduleInput) (model.Task, error) {
	current, err := uc.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	var due time.Time
	switch {
	case input.Day != nil:
		day := input.Day.In(uc.settings.Location)
		hour, minute, sec := 0, 0, 0
		if current.Due != nil {
			prev := current.Due.In(uc.settings.Location)
			hour, minute, sec = prev.Hour(), prev.Minute(), prev.Second()
		}
		due = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, sec, 0, uc.settings.Location)
	case input.SnoozeMinutes != 0:
		base := uc.now()
		if current.Due != nil {
			base = *current.Due
		}
		due = base.Add(time.Duration(input.SnoozeMinutes) * time.Minute)
	default:
		return model.Task{}, task.ErrNothingToUpdate
	}

	updated, err := uc.repo.Update(ctx, userID, id, repository.UpdateTaskOptions{Due: &due})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	uc.publish(ctx, userID)
	return updated, nil
}
