package stats_test

import (
	"testing"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/stats"
)

func TestPoints(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
	}
	if got := stats.Points(tasks); got != 2*stats.PointsPerCompletion {
		t.Errorf("Points = %d, want %d", got, 2*stats.PointsPerCompletion)
	}
	if got := stats.Points(nil); got != 0 {
		t.Errorf("Points(nil) = %d, want 0", got)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 4, 17, 0, 0, 0, time.UTC)
	tomorrow := today.Add(24 * time.Hour)

	tasks := []model.Task{
		{ID: "a", Due: &today},
		{ID: "b", Due: &today, Completed: true},
		{ID: "c", Due: &tomorrow},
		{ID: "d"}, // no due date
	}

	got := stats.Today(tasks, now)
	if got.Total != 2 {
		t.Errorf("Total = %d, want 2", got.Total)
	}
	if got.Completed != 1 {
		t.Errorf("Completed = %d, want 1", got.Completed)
	}
}

func TestHistory(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("Zero Filled Oldest First", func(t *testing.T) {
		got := stats.History(nil, now, stats.HistoryDays)
		if len(got) != stats.HistoryDays {
			t.Fatalf("expected %d buckets, got %d", stats.HistoryDays, len(got))
		}
		if got[0].Date != "2026-03-01" {
			t.Errorf("first bucket = %s, want 2026-03-01", got[0].Date)
		}
		if got[len(got)-1].Date != "2026-03-14" {
			t.Errorf("last bucket = %s, want 2026-03-14", got[len(got)-1].Date)
		}
		for _, b := range got {
			if b.Completed != 0 {
				t.Errorf("expected zero count for %s, got %d", b.Date, b.Completed)
			}
		}
	})

	t.Run("Buckets Completions By Day", func(t *testing.T) {
		d1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		d2 := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
		old := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC) // outside window

		tasks := []model.Task{
			{ID: "a", Completed: true, CompletedAt: &d1},
			{ID: "b", Completed: true, CompletedAt: &d2},
			{ID: "c", Completed: true, CompletedAt: &old},
			{ID: "d"},
		}

		got := stats.History(tasks, now, stats.HistoryDays)
		for _, b := range got {
			switch b.Date {
			case "2026-03-10":
				if b.Completed != 2 {
					t.Errorf("2026-03-10 = %d, want 2", b.Completed)
				}
			default:
				if b.Completed != 0 {
					t.Errorf("%s = %d, want 0", b.Date, b.Completed)
				}
			}
		}
	})

	t.Run("Nonpositive Days", func(t *testing.T) {
		if got := stats.History(nil, now, 0); len(got) != 0 {
			t.Errorf("expected empty history, got %v", got)
		}
	})
}
