package usecase

import (
	"context"
	"errors"
	"fmt"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task"
	"pro-todo-backend/internal/task/repository"
	"pro-todo-backend/pkg/recurrence"
)

// ToggleCompletion flips the completion state. Completing a repeating task
// also creates its next occurrence, once per completion.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, userID, id string) (task.ToggleOutput, error) {
	current, err := uc.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ToggleOutput{}, task.ErrNotFound
		}
		return task.ToggleOutput{}, fmt.Errorf("failed to get task: %w", err)
	}

	completed := !current.Completed
	opt := repository.UpdateTaskOptions{Completed: &completed}
	if completed {
		now := uc.now()
		opt.CompletedAt = &now
	} else {
		opt.ClearCompletedAt = true
	}

	toggled, err := uc.repo.Update(ctx, userID, id, opt)
	if err != nil {
		return task.ToggleOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	out := task.ToggleOutput{Task: toggled}

	// Spawn the next occurrence on the incomplete -> complete transition only.
	if completed && current.Repeat != nil {
		if next, ok := recurrence.Next(current.Due, current.Repeat, uc.now()); ok {
			spawned, err := uc.repo.Create(ctx, userID, repository.CreateTaskOptions{
				Title:    current.Title,
				Tags:     append([]string(nil), current.Tags...),
				Project:  current.Project,
				Area:     current.Area,
				Priority: current.Priority,
				Due:      &next,
				Repeat:   cloneRepeat(current.Repeat),
				Reminder: current.Reminder,
				Subtasks: cloneSubtasks(current.Subtasks),
				Notes:    current.Notes,
			})
			if err != nil {
				return task.ToggleOutput{}, fmt.Errorf("failed to create next occurrence: %w", err)
			}
			out.Spawned = &spawned
			uc.l.Infof(ctx, "ToggleCompletion: user=%s task=%s spawned=%s due=%s", userID, id, spawned.ID, next)
		}
	}

	uc.publish(ctx, userID)
	return out, nil
}

func cloneRepeat(r *model.RepeatRule) *model.RepeatRule {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func cloneSubtasks(subtasks []model.Subtask) []model.Subtask {
	if len(subtasks) == 0 {
		return nil
	}
	return append([]model.Subtask(nil), subtasks...)
}
