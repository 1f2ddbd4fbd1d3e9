package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task"
)

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Title Error", func(t *testing.T) {
		uc, _ := newTestUC()
		_, err := uc.Create(ctx, "alice", task.CreateInput{Title: "  "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		uc, _ := newTestUC()
		created, err := uc.Create(ctx, "alice", task.CreateInput{Title: " Water plants "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Title != "Water plants" {
			t.Errorf("title not trimmed: %q", created.Title)
		}
		if created.Project != model.DefaultProject {
			t.Errorf("unexpected project %q", created.Project)
		}
		if created.Area != model.AreaPersonal || created.Priority != model.PriorityMedium {
			t.Errorf("unexpected defaults: area=%s priority=%s", created.Area, created.Priority)
		}
	})

	t.Run("Duplicate Tags Are Dropped", func(t *testing.T) {
		uc, _ := newTestUC()
		created, err := uc.Create(ctx, "alice", task.CreateInput{
			Title: "Read",
			Tags:  []string{"book", "book", "evening"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created.Tags) != 2 || created.Tags[0] != "book" || created.Tags[1] != "evening" {
			t.Errorf("unexpected tags %v", created.Tags)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil Query Returns Everything Newest First", func(t *testing.T) {
		uc, _ := newTestUC()
		first, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "first"})
		second, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "second"})
		if _, err := uc.ToggleCompletion(ctx, "alice", first.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tasks, err := uc.List(ctx, "alice", task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("expected both tasks, got %d", len(tasks))
		}
		if tasks[0].ID != second.ID {
			t.Errorf("expected newest first, got %s", tasks[0].Title)
		}
	})

	t.Run("Empty Query Keeps Incomplete Only", func(t *testing.T) {
		uc, _ := newTestUC()
		done, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "done"})
		uc.Create(ctx, "alice", task.CreateInput{Title: "open"})
		if _, err := uc.ToggleCompletion(ctx, "alice", done.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		q := ""
		tasks, err := uc.List(ctx, "alice", task.ListInput{Query: &q})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "open" {
			t.Errorf("unexpected result %v", tasks)
		}
	})

	t.Run("Query Filters", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, "alice", task.CreateInput{Title: "Buy milk", Tags: []string{"groceries"}})
		uc.Create(ctx, "alice", task.CreateInput{Title: "Ship release", Project: "Work"})

		q := "tag:groceries"
		tasks, err := uc.List(ctx, "alice", task.ListInput{Query: &q})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
			t.Errorf("unexpected result %v", tasks)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Task Error", func(t *testing.T) {
		uc, _ := newTestUC()
		_, err := uc.Update(ctx, "alice", "missing", task.UpdateInput{Title: strPtr("x")})
		if !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Empty Patch Error", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "x"})
		_, err := uc.Update(ctx, "alice", created.ID, task.UpdateInput{})
		if !errors.Is(err, task.ErrNothingToUpdate) {
			t.Errorf("expected ErrNothingToUpdate, got %v", err)
		}
	})

	t.Run("Partial Patch Leaves Other Fields", func(t *testing.T) {
		uc, _ := newTestUC()
		due := time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)
		created, _ := uc.Create(ctx, "alice", task.CreateInput{
			Title: "Buy milk",
			Tags:  []string{"groceries"},
			Due:   &due,
			Notes: "2 liters",
		})

		updated, err := uc.Update(ctx, "alice", created.ID, task.UpdateInput{Title: strPtr("Buy oat milk")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "Buy oat milk" {
			t.Errorf("unexpected title %q", updated.Title)
		}
		if updated.Notes != "2 liters" || len(updated.Tags) != 1 || updated.Due == nil {
			t.Errorf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("Clear Due And Repeat", func(t *testing.T) {
		uc, _ := newTestUC()
		due := time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)
		created, _ := uc.Create(ctx, "alice", task.CreateInput{
			Title:  "Review",
			Due:    &due,
			Repeat: &model.RepeatRule{Type: model.RepeatWeekly},
		})

		updated, err := uc.Update(ctx, "alice", created.ID, task.UpdateInput{ClearDue: true, ClearRepeat: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Due != nil || updated.Repeat != nil {
			t.Errorf("expected due and repeat cleared: %+v", updated)
		}
	})

	t.Run("Blank Title Rejected", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "x"})
		_, err := uc.Update(ctx, "alice", created.ID, task.UpdateInput{Title: strPtr("   ")})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Task Error", func(t *testing.T) {
		uc, _ := newTestUC()
		if err := uc.Delete(ctx, "alice", "missing"); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Deleted Task Is Gone", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "x"})
		if err := uc.Delete(ctx, "alice", created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Detail(ctx, "alice", created.ID); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}
