package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task"
	"pro-todo-backend/internal/task/repository"
)

// Create persists an explicit draft, applying the field defaults.
func (uc *implUseCase) Create(ctx context.Context, userID string, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	project := strings.TrimSpace(input.Project)
	if project == "" {
		project = model.DefaultProject
	}

	created, err := uc.repo.Create(ctx, userID, repository.CreateTaskOptions{
		Title:    title,
		Tags:     dedupeTags(input.Tags),
		Project:  project,
		Area:     normalizeArea(input.Area),
		Priority: normalizePriority(input.Priority),
		Due:      input.Due,
		Repeat:   input.Repeat,
		Reminder: input.Reminder,
		Subtasks: input.Subtasks,
		Notes:    input.Notes,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.publish(ctx, userID)
	return created, nil
}

// List returns the user's tasks, run through the saved-query evaluator
// when a query is given.
func (uc *implUseCase) List(ctx context.Context, userID string, input task.ListInput) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if input.Query == nil {
		return tasks, nil
	}
	return uc.evaluator.Evaluate(tasks, *input.Query, uc.now()), nil
}

// Detail returns one task.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// Update merges a partial patch into the task.
func (uc *implUseCase) Update(ctx context.Context, userID, id string, input task.UpdateInput) (model.Task, error) {
	opt := repository.UpdateTaskOptions{
		Notes:       input.Notes,
		Reminder:    input.Reminder,
		Due:         input.Due,
		ClearDue:    input.ClearDue,
		Repeat:      input.Repeat,
		ClearRepeat: input.ClearRepeat,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		opt.Title = &title
	}
	if input.Project != nil {
		project := strings.TrimSpace(*input.Project)
		if project == "" {
			project = model.DefaultProject
		}
		opt.Project = &project
	}
	if input.Area != nil {
		area := normalizeArea(*input.Area)
		opt.Area = &area
	}
	if input.Priority != nil {
		priority := normalizePriority(*input.Priority)
		opt.Priority = &priority
	}
	if input.Tags != nil {
		tags := dedupeTags(*input.Tags)
		opt.Tags = &tags
	}

	if opt == (repository.UpdateTaskOptions{}) {
		return model.Task{}, task.ErrNothingToUpdate
	}

	updated, err := uc.repo.Update(ctx, userID, id, opt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	uc.publish(ctx, userID)
	return updated, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	uc.publish(ctx, userID)
	return nil
}
