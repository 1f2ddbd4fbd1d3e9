// Package quickparse turns one free-text capture string into a structured
// task draft. Parsing is total: any fragment that is not recognized stays
// part of the title.
package quickparse

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"pro-todo-backend/internal/model"
)

// Draft is the parser output: an unsaved, structured task with no identity.
type Draft struct {
	Title    string
	Tags     []string
	Project  string
	Priority model.Priority
	Due      *time.Time
	Repeat   *model.RepeatRule
}

// Parser extracts task metadata from natural-language input. The date/time
// resolution is delegated to the rule-based `when` resolver.
type Parser struct {
	resolver *when.Parser
}

// New builds a parser with the English and common date rules registered.
func New() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{resolver: w}
}

var (
	tagRe          = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)
	projectRe      = regexp.MustCompile(`(?i)\bp:([A-Za-z0-9 _-]+)`)
	priHighRe      = regexp.MustCompile(`(?i)!!|!high\b`)
	priLowRe       = regexp.MustCompile(`(?i)!low\b`)
	priMedRe       = regexp.MustCompile(`(?i)!med(iu)?m?\b`)
	everyWeekdayRe = regexp.MustCompile(`(?i)\bevery\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	dailyRe        = regexp.MustCompile(`(?i)\bdaily\b`)
	weeklyRe       = regexp.MustCompile(`(?i)\bweekly\b`)
	monthlyRe      = regexp.MustCompile(`(?i)\bmonthly\b`)
	spaceRunRe     = regexp.MustCompile(`\s{2,}`)
)

type span struct{ start, end int }

// Parse extracts tags, project, priority, recurrence and due date from text.
// All extractions scan the original string independently; the matched spans
// are removed in one pass afterwards so earlier removals cannot corrupt
// later offsets. now anchors relative date resolution; the parser captures
// no clock of its own.
func (p *Parser) Parse(text string, now time.Time) Draft {
	draft := Draft{
		Title:    text,
		Tags:     []string{},
		Project:  model.DefaultProject,
		Priority: model.PriorityMedium,
	}

	var spans []span

	// Tags: every #token, in source order. Duplicates survive here; the
	// caller dedupes when the draft is persisted.
	for _, m := range tagRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{m[0], m[1]})
		draft.Tags = append(draft.Tags, text[m[2]:m[3]])
	}

	// Project: first p:<text> match, trimmed.
	if m := projectRe.FindStringSubmatchIndex(text); m != nil {
		spans = append(spans, span{m[0], m[1]})
		if proj := strings.TrimSpace(text[m[2]:m[3]]); proj != "" {
			draft.Project = proj
		}
	}

	// Priority markers, fixed precedence: High first, then Low, then Medium.
	// All marker occurrences are stripped from the title regardless of which
	// one won.
	switch {
	case priHighRe.MatchString(text):
		draft.Priority = model.PriorityHigh
	case priLowRe.MatchString(text):
		draft.Priority = model.PriorityLow
	case priMedRe.MatchString(text):
		draft.Priority = model.PriorityMedium
	}
	for _, re := range []*regexp.Regexp{priHighRe, priLowRe, priMedRe} {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{m[0], m[1]})
		}
	}

	// Recurrence. "every <weekday>" is detected first, but a later bare
	// daily/weekly/monthly keyword overwrites it: last keyword wins.
	if m := everyWeekdayRe.FindStringSubmatchIndex(text); m != nil {
		spans = append(spans, span{m[0], m[1]})
		draft.Repeat = &model.RepeatRule{
			Type:    model.RepeatWeekly,
			Weekday: strings.ToLower(text[m[2]:m[3]]),
		}
	}
	for _, kw := range []struct {
		re *regexp.Regexp
		t  model.RepeatType
	}{
		{dailyRe, model.RepeatDaily},
		{weeklyRe, model.RepeatWeekly},
		{monthlyRe, model.RepeatMonthly},
	} {
		if m := kw.re.FindStringIndex(text); m != nil {
			spans = append(spans, span{m[0], m[1]})
			draft.Repeat = &model.RepeatRule{Type: kw.t}
		}
	}

	cleaned := removeSpans(text, spans)

	// The residue goes to the date resolver; its first candidate becomes
	// the due date. The matched date text stays in the title.
	if r, err := p.resolver.Parse(cleaned, now); err == nil && r != nil {
		due := r.Time
		draft.Due = &due
	}

	title := strings.TrimSpace(spaceRunRe.ReplaceAllString(cleaned, " "))
	if title == "" {
		title = strings.TrimSpace(text)
	}
	draft.Title = title

	return draft
}

// removeSpans drops the given byte ranges from s. Overlapping spans (e.g.
// "!!" matched twice) collapse into one removal.
func removeSpans(s string, spans []span) string {
	if len(spans) == 0 {
		return s
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var sb strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.start > pos {
			sb.WriteString(s[pos:sp.start])
		}
		if sp.end > pos {
			pos = sp.end
		}
	}
	if pos < len(s) {
		sb.WriteString(s[pos:])
	}
	return sb.String()
}
