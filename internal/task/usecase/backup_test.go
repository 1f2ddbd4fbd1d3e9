package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/stats"
	"pro-todo-backend/internal/task"
)

func TestExportICS(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Task Error", func(t *testing.T) {
		uc, _ := newTestUC()
		if _, err := uc.ExportICS(ctx, "alice", "missing"); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Renders VEVENT", func(t *testing.T) {
		uc, _ := newTestUC()
		due := time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Buy milk", Due: &due})

		out, err := uc.ExportICS(ctx, "alice", created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "UID:"+created.ID+"@pro-todo") {
			t.Errorf("missing UID:\n%s", out)
		}
		if !strings.Contains(out, "DTSTART:20260305T170000Z") {
			t.Errorf("missing DTSTART:\n%s", out)
		}
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty State", func(t *testing.T) {
		uc, _ := newTestUC()
		state, err := uc.Export(ctx, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(state.Tasks) != 0 {
			t.Errorf("expected no tasks, got %d", len(state.Tasks))
		}
		if len(state.Projects) != 4 || state.Projects[0] != "Inbox" {
			t.Errorf("expected default projects, got %v", state.Projects)
		}
		if state.Points != 0 {
			t.Errorf("expected 0 points, got %d", state.Points)
		}
		if len(state.History) != stats.HistoryDays {
			t.Errorf("expected %d history buckets, got %d", stats.HistoryDays, len(state.History))
		}
	})

	t.Run("Projects Join Defaults In First Seen Order", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, "alice", task.CreateInput{Title: "a", Project: "Garden"})
		uc.Create(ctx, "alice", task.CreateInput{Title: "b", Project: "Work"})

		state, err := uc.Export(ctx, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(state.Projects) != 5 || state.Projects[4] != "Garden" {
			t.Errorf("unexpected projects %v", state.Projects)
		}
	})

	t.Run("Points Count Completions", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "done"})
		uc.Create(ctx, "alice", task.CreateInput{Title: "open"})
		if _, err := uc.ToggleCompletion(ctx, "alice", created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state, _ := uc.Export(ctx, "alice")
		if state.Points != stats.PointsPerCompletion {
			t.Errorf("expected %d points, got %d", stats.PointsPerCompletion, state.Points)
		}
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip Preserves Content", func(t *testing.T) {
		uc, _ := newTestUC()
		due := time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)
		uc.Create(ctx, "alice", task.CreateInput{
			Title:    "Buy milk",
			Tags:     []string{"groceries"},
			Project:  "Home",
			Priority: model.PriorityHigh,
			Due:      &due,
			Repeat:   &model.RepeatRule{Type: model.RepeatWeekly, Weekday: "monday"},
			Reminder: 15,
			Notes:    "2 liters",
		})
		done, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Water plants"})
		if _, err := uc.ToggleCompletion(ctx, "alice", done.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state, err := uc.Export(ctx, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Import into a fresh user on a fresh store.
		uc2, _ := newTestUC()
		out, err := uc2.Import(ctx, "bob", task.ImportInput{State: state})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Imported != 2 {
			t.Errorf("expected 2 imported, got %d", out.Imported)
		}

		restored, err := uc2.Export(ctx, "bob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(restored.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(restored.Tasks))
		}
		if restored.Points != state.Points {
			t.Errorf("points not preserved: %d != %d", restored.Points, state.Points)
		}

		var milk *model.Task
		for i := range restored.Tasks {
			if restored.Tasks[i].Title == "Buy milk" {
				milk = &restored.Tasks[i]
			}
		}
		if milk == nil {
			t.Fatal("imported task missing")
		}
		if milk.Project != "Home" || milk.Priority != model.PriorityHigh ||
			milk.Notes != "2 liters" || milk.Reminder != 15 {
			t.Errorf("fields not preserved: %+v", milk)
		}
		if milk.Due == nil || !milk.Due.Equal(due) {
			t.Errorf("due not preserved: %v", milk.Due)
		}
		if milk.Repeat == nil || milk.Repeat.Weekday != "monday" {
			t.Errorf("repeat not preserved: %+v", milk.Repeat)
		}
	})

	t.Run("Identities Are Reassigned", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "x"})
		state, _ := uc.Export(ctx, "alice")

		out, err := uc.Import(ctx, "alice", task.ImportInput{State: state})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Imported != 1 {
			t.Fatalf("expected 1 imported, got %d", out.Imported)
		}

		tasks, _ := uc.List(ctx, "alice", task.ListInput{})
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks after re-import, got %d", len(tasks))
		}
		if tasks[0].ID == tasks[1].ID {
			t.Error("imported task must get a new id")
		}
		for _, tk := range tasks {
			if tk.Title != created.Title {
				t.Errorf("unexpected title %q", tk.Title)
			}
		}
	})
}
