package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task"
	"pro-todo-backend/internal/task/repository"
)

// QuickAdd parses one capture string and persists the resulting draft.
// When the parser resolves no due date, the task falls due on the selected
// calendar day (today by default) at the configured default hour.
func (uc *implUseCase) QuickAdd(ctx context.Context, userID string, input task.QuickAddInput) (model.Task, error) {
	if strings.TrimSpace(input.Text) == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	now := uc.now()
	draft := uc.parser.Parse(input.Text, now)

	due := draft.Due
	if due == nil {
		day := now
		if input.SelectedDay != nil {
			day = input.SelectedDay.In(uc.settings.Location)
		}
		d := time.Date(day.Year(), day.Month(), day.Day(), uc.settings.DefaultDueHour, 0, 0, 0, uc.settings.Location)
		due = &d
	}

	created, err := uc.repo.Create(ctx, userID, repository.CreateTaskOptions{
		Title:    draft.Title,
		Tags:     dedupeTags(draft.Tags),
		Project:  draft.Project,
		Area:     normalizeArea(input.Area),
		Priority: draft.Priority,
		Due:      due,
		Repeat:   draft.Repeat,
		Reminder: uc.settings.DefaultReminderMinutes,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "QuickAdd: user=%s task=%s title=%q", userID, created.ID, created.Title)
	uc.publish(ctx, userID)
	return created, nil
}
