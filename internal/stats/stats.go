// Package stats derives streak and points figures from a task collection.
// Everything here is a pure function of the tasks and an explicit "now".
package stats

import (
	"time"

	"pro-todo-backend/internal/model"
)

const (
	// PointsPerCompletion is awarded for every completed task.
	PointsPerCompletion = 10

	// HistoryDays is the default span of the completion history chart.
	HistoryDays = 14
)

// DayCount is one day of completion history.
type DayCount struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Completed int    `json:"completed"`
}

// TodaySummary counts today's workload: tasks due today and how many of
// them are done.
type TodaySummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Points returns the score for the collection.
func Points(tasks []model.Task) int {
	points := 0
	for _, t := range tasks {
		if t.Completed {
			points += PointsPerCompletion
		}
	}
	return points
}

// Today summarizes the tasks due on now's calendar day.
func Today(tasks []model.Task, now time.Time) TodaySummary {
	var s TodaySummary
	for _, t := range tasks {
		if t.Due == nil || !sameDay(*t.Due, now) {
			continue
		}
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

// History buckets completions by calendar day over the last `days` days,
// oldest first. Days without completions appear with a zero count so the
// chart axis stays continuous.
func History(tasks []model.Task, now time.Time, days int) []DayCount {
	if days <= 0 {
		return []DayCount{}
	}

	counts := make(map[string]int)
	for _, t := range tasks {
		if t.CompletedAt != nil {
			counts[t.CompletedAt.Format("2006-01-02")]++
		}
	}

	out := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		key := d.Format("2006-01-02")
		out = append(out, DayCount{Date: key, Completed: counts[key]})
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
