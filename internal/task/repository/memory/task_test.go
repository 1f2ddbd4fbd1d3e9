package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task/repository"
	"pro-todo-backend/internal/task/repository/memory"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("Create Assigns Identity And Timestamps", func(t *testing.T) {
		repo := memory.NewWithClock(func() time.Time { return now })
		created, err := repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("expected an assigned id")
		}
		if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
			t.Errorf("unexpected timestamps %v / %v", created.CreatedAt, created.UpdatedAt)
		}
	})

	t.Run("Get Unknown Returns ErrNotFound", func(t *testing.T) {
		repo := memory.New()
		if _, err := repo.Get(ctx, "alice", "missing"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List Is Newest First", func(t *testing.T) {
		clock := now
		repo := memory.NewWithClock(func() time.Time { return clock })

		repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "first"})
		clock = clock.Add(time.Minute)
		repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "second"})

		tasks, err := repo.List(ctx, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 || tasks[0].Title != "second" || tasks[1].Title != "first" {
			t.Errorf("unexpected order %v", tasks)
		}
	})

	t.Run("Equal Timestamps Fall Back To Creation Order", func(t *testing.T) {
		repo := memory.NewWithClock(func() time.Time { return now })
		repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "first"})
		repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "second"})

		tasks, _ := repo.List(ctx, "alice")
		if tasks[0].Title != "second" {
			t.Errorf("expected later creation first, got %q", tasks[0].Title)
		}
	})

	t.Run("Users Are Isolated", func(t *testing.T) {
		repo := memory.New()
		repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "a"})
		repo.Create(ctx, "bob", repository.CreateTaskOptions{Title: "b"})

		tasks, _ := repo.List(ctx, "alice")
		if len(tasks) != 1 || tasks[0].Title != "a" {
			t.Errorf("unexpected tasks %v", tasks)
		}
	})

	t.Run("Update Merges Patch", func(t *testing.T) {
		clock := now
		repo := memory.NewWithClock(func() time.Time { return clock })
		created, _ := repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "x", Notes: "keep"})

		clock = clock.Add(time.Minute)
		title := "y"
		updated, err := repo.Update(ctx, "alice", created.ID, repository.UpdateTaskOptions{Title: &title})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "y" || updated.Notes != "keep" {
			t.Errorf("unexpected merge result %+v", updated)
		}
		if !updated.UpdatedAt.After(updated.CreatedAt) {
			t.Error("expected updatedAt refreshed")
		}
	})

	t.Run("Update Clear Flags", func(t *testing.T) {
		repo := memory.New()
		due := now
		created, _ := repo.Create(ctx, "alice", repository.CreateTaskOptions{
			Title:  "x",
			Due:    &due,
			Repeat: &model.RepeatRule{Type: model.RepeatDaily},
		})

		updated, err := repo.Update(ctx, "alice", created.ID, repository.UpdateTaskOptions{
			ClearDue:    true,
			ClearRepeat: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Due != nil || updated.Repeat != nil {
			t.Errorf("expected cleared fields, got %+v", updated)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := memory.New()
		created, _ := repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "x"})

		if err := repo.Delete(ctx, "alice", created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Get(ctx, "alice", created.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, "alice", created.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound on double delete, got %v", err)
		}
	})

	t.Run("DeleteAll Removes The Whole Collection", func(t *testing.T) {
		repo := memory.New()
		repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "a"})
		repo.Create(ctx, "alice", repository.CreateTaskOptions{Title: "b"})
		repo.Create(ctx, "bob", repository.CreateTaskOptions{Title: "c"})

		if err := repo.DeleteAll(ctx, "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tasks, _ := repo.List(ctx, "alice")
		if len(tasks) != 0 {
			t.Errorf("expected no tasks, got %v", tasks)
		}
		bobs, _ := repo.List(ctx, "bob")
		if len(bobs) != 1 {
			t.Errorf("bob's tasks must survive, got %v", bobs)
		}
	})
}
