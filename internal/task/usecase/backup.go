package usecase

import (
	"context"
	"errors"
	"fmt"

	"pro-todo-backend/internal/stats"
	"pro-todo-backend/internal/task"
	"pro-todo-backend/internal/task/repository"
	"pro-todo-backend/pkg/ics"
)

// defaultProjects seed every new workspace; user projects join them in
// first-seen order.
var defaultProjects = []string{"Inbox", "Work", "Personal", "School"}

// ExportICS renders one task as an iCalendar event.
func (uc *implUseCase) ExportICS(ctx context.Context, userID, id string) (string, error) {
	t, err := uc.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", task.ErrNotFound
		}
		return "", fmt.Errorf("failed to get task: %w", err)
	}
	return ics.Encode(t, uc.now()), nil
}

// Export builds the full application state for one user.
func (uc *implUseCase) Export(ctx context.Context, userID string) (task.State, error) {
	tasks, err := uc.repo.List(ctx, userID)
	if err != nil {
		return task.State{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	projects := append([]string(nil), defaultProjects...)
	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		seen[p] = struct{}{}
	}
	for _, t := range tasks {
		if t.Project == "" {
			continue
		}
		if _, ok := seen[t.Project]; ok {
			continue
		}
		seen[t.Project] = struct{}{}
		projects = append(projects, t.Project)
	}

	now := uc.now()
	return task.State{
		Tasks:    tasks,
		Projects: projects,
		Points:   stats.Points(tasks),
		History:  stats.History(tasks, now, stats.HistoryDays),
	}, nil
}

// Import restores a previously exported state. Tasks get new identifiers
// and fresh store timestamps; everything else is preserved.
func (uc *implUseCase) Import(ctx context.Context, userID string, input task.ImportInput) (task.ImportOutput, error) {
	imported := 0
	for _, t := range input.State.Tasks {
		_, err := uc.repo.Create(ctx, userID, repository.CreateTaskOptions{
			Title:       t.Title,
			Tags:        append([]string(nil), t.Tags...),
			Project:     t.Project,
			Area:        t.Area,
			Priority:    t.Priority,
			Due:         t.Due,
			Repeat:      cloneRepeat(t.Repeat),
			Reminder:    t.Reminder,
			Completed:   t.Completed,
			CompletedAt: t.CompletedAt,
			Subtasks:    cloneSubtasks(t.Subtasks),
			Notes:       t.Notes,
		})
		if err != nil {
			return task.ImportOutput{}, fmt.Errorf("failed to import task %q: %w", t.Title, err)
		}
		imported++
	}

	uc.l.Infof(ctx, "Import: user=%s tasks=%d", userID, imported)
	uc.publish(ctx, userID)
	return task.ImportOutput{Imported: imported}, nil
}
