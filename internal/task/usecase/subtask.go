package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task"
	"pro-todo-backend/internal/task/repository"
)

// AddSubtask appends a new incomplete subtask.
func (uc *implUseCase) AddSubtask(ctx context.Context, userID, taskID, title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	current, err := uc.repo.Get(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	subtasks := append(cloneSubtasks(current.Subtasks), model.Subtask{
		ID:    uuid.NewString(),
		Title: title,
	})
	return uc.saveSubtasks(ctx, userID, taskID, subtasks)
}

// ToggleSubtask flips one subtask's completion state.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, userID, taskID, subtaskID string) (model.Task, error) {
	current, err := uc.repo.Get(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	subtasks := cloneSubtasks(current.Subtasks)
	found := false
	for i := range subtasks {
		if subtasks[i].ID == subtaskID {
			subtasks[i].Done = !subtasks[i].Done
			found = true
			break
		}
	}
	if !found {
		return model.Task{}, task.ErrSubtaskNotFound
	}

	return uc.saveSubtasks(ctx, userID, taskID, subtasks)
}

// RemoveSubtask deletes one subtask.
func (uc *implUseCase) RemoveSubtask(ctx context.Context, userID, taskID, subtaskID string) (model.Task, error) {
	current, err := uc.repo.Get(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	subtasks := make([]model.Subtask, 0, len(current.Subtasks))
	for _, st := range current.Subtasks {
		if st.ID != subtaskID {
			subtasks = append(subtasks, st)
		}
	}
	if len(subtasks) == len(current.Subtasks) {
		return model.Task{}, task.ErrSubtaskNotFound
	}

	return uc.saveSubtasks(ctx, userID, taskID, subtasks)
}

func (uc *implUseCase) saveSubtasks(ctx context.Context, userID, taskID string, subtasks []model.Subtask) (model.Task, error) {
	updated, err := uc.repo.Update(ctx, userID, taskID, repository.UpdateTaskOptions{Subtasks: &subtasks})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	uc.publish(ctx, userID)
	return updated, nil
}
