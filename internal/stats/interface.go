package stats

import "context"

// UseCase computes a user's statistics panel.
type UseCase interface {
	// Summary returns points, today's completion and the recent history.
	Summary(ctx context.Context, userID string) (Summary, error)
}

// Summary is the statistics panel payload.
type Summary struct {
	Points  int          `json:"points"`
	Today   TodaySummary `json:"today"`
	History []DayCount   `json:"history"`
}
