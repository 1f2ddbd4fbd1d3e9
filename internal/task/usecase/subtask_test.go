package usecase_test

import (
	"context"
	"errors"
	"testing"

	"pro-todo-backend/internal/task"
)

func TestSubtasks(t *testing.T) {
	ctx := context.Background()

	t.Run("Add Appends Incomplete Subtask", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Trip"})

		updated, err := uc.AddSubtask(ctx, "alice", created.ID, "Book flights")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Subtasks) != 1 {
			t.Fatalf("expected 1 subtask, got %d", len(updated.Subtasks))
		}
		st := updated.Subtasks[0]
		if st.ID == "" || st.Title != "Book flights" || st.Done {
			t.Errorf("unexpected subtask %+v", st)
		}
	})

	t.Run("Add Blank Title Error", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Trip"})
		if _, err := uc.AddSubtask(ctx, "alice", created.ID, "  "); !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Toggle Flips Done", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Trip"})
		withSub, _ := uc.AddSubtask(ctx, "alice", created.ID, "Pack")
		subID := withSub.Subtasks[0].ID

		updated, err := uc.ToggleSubtask(ctx, "alice", created.ID, subID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Subtasks[0].Done {
			t.Error("expected subtask done after toggle")
		}

		updated, err = uc.ToggleSubtask(ctx, "alice", created.ID, subID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Subtasks[0].Done {
			t.Error("expected subtask undone after second toggle")
		}
	})

	t.Run("Toggle Unknown Subtask Error", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Trip"})
		if _, err := uc.ToggleSubtask(ctx, "alice", created.ID, "missing"); !errors.Is(err, task.ErrSubtaskNotFound) {
			t.Errorf("expected ErrSubtaskNotFound, got %v", err)
		}
	})

	t.Run("Remove Deletes Only The Target", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Trip"})
		uc.AddSubtask(ctx, "alice", created.ID, "Pack")
		withBoth, _ := uc.AddSubtask(ctx, "alice", created.ID, "Book hotel")

		updated, err := uc.RemoveSubtask(ctx, "alice", created.ID, withBoth.Subtasks[0].ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Subtasks) != 1 || updated.Subtasks[0].Title != "Book hotel" {
			t.Errorf("unexpected subtasks %+v", updated.Subtasks)
		}
	})

	t.Run("Remove Unknown Subtask Error", func(t *testing.T) {
		uc, _ := newTestUC()
		created, _ := uc.Create(ctx, "alice", task.CreateInput{Title: "Trip"})
		if _, err := uc.RemoveSubtask(ctx, "alice", created.ID, "missing"); !errors.Is(err, task.ErrSubtaskNotFound) {
			t.Errorf("expected ErrSubtaskNotFound, got %v", err)
		}
	})
}
