// Package recurrence computes the next occurrence of a repeating task.
package recurrence

import (
	"time"

	"pro-todo-backend/internal/model"
)

const day = 24 * time.Hour

// Next returns the instant the successor of a just-completed recurring task
// falls due. The base is the task's due instant, or now when it has none.
// A nil or unrecognized rule yields ok=false: no successor is spawned.
//
// Guarantees:
//   - daily advances by exactly 24h, weekly (unpinned) by exactly 7×24h.
//   - a weekday-pinned weekly rule always moves at least one day forward,
//     even when the base already falls on the pinned weekday. Next never
//     returns the base instant.
//   - monthly keeps the day-of-month and time-of-day one calendar month
//     later, clamping to the last day of shorter months (Jan 31 → Feb 28/29).
func Next(due *time.Time, rule *model.RepeatRule, now time.Time) (time.Time, bool) {
	if rule == nil {
		return time.Time{}, false
	}

	base := now
	if due != nil {
		base = *due
	}

	switch rule.Type {
	case model.RepeatDaily:
		return base.Add(day), true
	case model.RepeatWeekly:
		if target, ok := model.ParseWeekday(rule.Weekday); ok {
			next := base.Add(day)
			for next.Weekday() != target {
				next = next.Add(day)
			}
			return next, true
		}
		return base.Add(7 * day), true
	case model.RepeatMonthly:
		return addMonthClamped(base), true
	default:
		return time.Time{}, false
	}
}

// addMonthClamped moves t one calendar month forward, keeping the clock and
// clamping the day-of-month to the length of the target month instead of
// letting date normalization spill into the month after.
func addMonthClamped(t time.Time) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(firstOfTarget); d > last {
		d = last
	}
	ty, tm, _ := firstOfTarget.Date()
	return time.Date(ty, tm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the month containing t.
func daysIn(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
