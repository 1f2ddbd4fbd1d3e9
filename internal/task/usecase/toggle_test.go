package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task"
)

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Task Error", func(t *testing.T) {
		uc, _ := newTestUC()
		_, err := uc.ToggleCompletion(ctx, "alice", "missing")
		if !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Complete Sets CompletedAt", func(t *testing.T) {
		uc, _ := newTestUC()
		created, err := uc.Create(ctx, "alice", task.CreateInput{Title: "Water plants"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.ToggleCompletion(ctx, "alice", created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Completed {
			t.Error("expected task completed")
		}
		if out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(testNow) {
			t.Errorf("unexpected completedAt %v", out.Task.CompletedAt)
		}
		if out.Spawned != nil {
			t.Errorf("non-recurring task must not spawn, got %+v", out.Spawned)
		}
	})

	t.Run("Uncomplete Clears CompletedAt", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Water plants"})
		if _, err := uc.ToggleCompletion(ctx, "alice", created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.ToggleCompletion(ctx, "alice", created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Completed {
			t.Error("expected task incomplete after second toggle")
		}
		if out.Task.CompletedAt != nil {
			t.Errorf("expected completedAt cleared, got %v", out.Task.CompletedAt)
		}
		if out.Spawned != nil {
			t.Error("uncompleting must not spawn")
		}
	})

	t.Run("Completing Recurring Task Spawns Successor", func(t *testing.T) {
		uc, repo := newTestUC()
		due := time.Date(2026, 3, 4, 17, 0, 0, 0, time.UTC)
		created, err := uc.Create(ctx, "alice", task.CreateInput{
			Title:    "Standup notes",
			Tags:     []string{"work"},
			Project:  "Work",
			Priority: model.PriorityHigh,
			Due:      &due,
			Repeat:   &model.RepeatRule{Type: model.RepeatDaily},
			Reminder: 15,
			Notes:    "keep it short",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.ToggleCompletion(ctx, "alice", created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Spawned == nil {
			t.Fatal("expected a spawned successor")
		}

		spawned := *out.Spawned
		if spawned.ID == created.ID {
			t.Error("successor must have a new identity")
		}
		if spawned.Completed || spawned.CompletedAt != nil {
			t.Error("successor must start incomplete")
		}
		if spawned.Due == nil || !spawned.Due.Equal(due.Add(24*time.Hour)) {
			t.Errorf("successor due = %v, want %v", spawned.Due, due.Add(24*time.Hour))
		}
		if spawned.Title != created.Title || spawned.Project != created.Project ||
			spawned.Priority != created.Priority || spawned.Notes != created.Notes ||
			spawned.Reminder != created.Reminder {
			t.Errorf("successor fields not copied: %+v", spawned)
		}
		if spawned.Repeat == nil || spawned.Repeat.Type != model.RepeatDaily {
			t.Errorf("successor must keep the repeat rule, got %+v", spawned.Repeat)
		}

		tasks, _ := repo.List(ctx, "alice")
		if len(tasks) != 2 {
			t.Errorf("expected 2 tasks in store, got %d", len(tasks))
		}
	})

	t.Run("Uncompleting Recurring Task Does Not Spawn", func(t *testing.T) {
		uc, repo := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{
			Title:  "Weekly review",
			Repeat: &model.RepeatRule{Type: model.RepeatWeekly},
		})

		// complete (spawns one), then uncomplete
		if _, err := uc.ToggleCompletion(ctx, "alice", created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.ToggleCompletion(ctx, "alice", created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Spawned != nil {
			t.Error("uncompleting must not spawn another successor")
		}

		tasks, _ := repo.List(ctx, "alice")
		if len(tasks) != 2 {
			t.Errorf("expected exactly 2 tasks (original + one successor), got %d", len(tasks))
		}
	})
}
