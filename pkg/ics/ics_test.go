package ics_test

import (
	"strings"
	"testing"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/pkg/ics"
)

func TestEncode(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("Event From Due Date", func(t *testing.T) {
		due := time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC)
		task := model.Task{
			ID:    "abc123",
			Title: "Buy milk",
			Due:   &due,
		}

		out := ics.Encode(task, now)
		lines := strings.Split(out, "\r\n")

		want := []string{
			"BEGIN:VCALENDAR",
			"VERSION:2.0",
			"PRODID:-//Pro To-Do//EN",
			"BEGIN:VEVENT",
			"UID:abc123@pro-todo",
			"DTSTAMP:20260304T120000Z",
			"DTSTART:20260305T170000Z",
			"DTEND:20260305T180000Z",
			"SUMMARY:Buy milk",
			"DESCRIPTION:",
			"END:VEVENT",
			"END:VCALENDAR",
		}
		if len(lines) != len(want) {
			t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), out)
		}
		for i, w := range want {
			if lines[i] != w {
				t.Errorf("line %d = %q, want %q", i, lines[i], w)
			}
		}
	})

	t.Run("No Due Falls Back To Now", func(t *testing.T) {
		task := model.Task{ID: "x", Title: "Untimed"}
		out := ics.Encode(task, now)

		if !strings.Contains(out, "DTSTART:20260304T120000Z") {
			t.Errorf("expected DTSTART at now:\n%s", out)
		}
		if !strings.Contains(out, "DTEND:20260304T130000Z") {
			t.Errorf("expected DTEND one hour later:\n%s", out)
		}
	})

	t.Run("Summary Commas Escaped", func(t *testing.T) {
		task := model.Task{ID: "x", Title: "Eggs, milk, bread"}
		out := ics.Encode(task, now)

		if !strings.Contains(out, `SUMMARY:Eggs\, milk\, bread`) {
			t.Errorf("commas not escaped:\n%s", out)
		}
	})

	t.Run("Description Newlines Escaped", func(t *testing.T) {
		task := model.Task{ID: "x", Title: "Notes", Notes: "line one\nline two"}
		out := ics.Encode(task, now)

		if !strings.Contains(out, `DESCRIPTION:line one\nline two`) {
			t.Errorf("newlines not escaped:\n%s", out)
		}
	})

	t.Run("Missing ID Gets A Generated UID", func(t *testing.T) {
		task := model.Task{Title: "Draft"}
		out := ics.Encode(task, now)

		if strings.Contains(out, "UID:@pro-todo") {
			t.Errorf("expected generated UID:\n%s", out)
		}
		if !strings.Contains(out, "@pro-todo") {
			t.Errorf("expected pro-todo UID domain:\n%s", out)
		}
	})

	t.Run("Timestamps Render In UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		due := time.Date(2026, 3, 5, 7, 0, 0, 0, loc) // 00:00 UTC
		task := model.Task{ID: "x", Title: "Tz", Due: &due}
		out := ics.Encode(task, now)

		if !strings.Contains(out, "DTSTART:20260305T000000Z") {
			t.Errorf("expected UTC conversion:\n%s", out)
		}
	})
}
