// Package ics renders a task as an iCalendar VEVENT block suitable for
// importing into Google Calendar or Outlook.
package ics

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pro-todo-backend/internal/model"
)

// Timestamps render in UTC with seconds fixed at 00.
const stampLayout = "20060102T1504" + "00Z"

// Encode renders a single-event calendar for the task. The event starts at
// the task's due instant (or now when it has none) and ends one hour later.
// Commas in the summary and newlines in the description are escaped per
// RFC 5545 text rules. now supplies DTSTAMP.
func Encode(task model.Task, now time.Time) string {
	start := now
	if task.Due != nil {
		start = *task.Due
	}
	end := start.Add(time.Hour)

	uid := task.ID
	if uid == "" {
		uid = uuid.NewString()
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Pro To-Do//EN",
		"BEGIN:VEVENT",
		"UID:" + uid + "@pro-todo",
		"DTSTAMP:" + now.UTC().Format(stampLayout),
		"DTSTART:" + start.UTC().Format(stampLayout),
		"DTEND:" + end.UTC().Format(stampLayout),
		"SUMMARY:" + strings.ReplaceAll(task.Title, ",", "\\,"),
		"DESCRIPTION:" + strings.ReplaceAll(task.Notes, "\n", "\\n"),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}
