package taskquery

import (
	"regexp"
	"strings"
	"time"

	"pro-todo-backend/internal/model"
)

// Expr is a compiled query expression. The variants form a closed set:
// termExpr, andExpr, orExpr.
type Expr interface {
	isExpr()
}

type termKind int

const (
	termTitle termKind = iota
	termTag
	termProject
	termPriority
	termDueToday
	termDueOverdue
	termDueNone
	termCompleted
)

type termExpr struct {
	kind  termKind
	value string // raw term value, pre-lowercased where comparison is folded
	want  bool   // for termCompleted
}

// andExpr and orExpr are left-leaning: the right side is always a single
// term, which mirrors the left-to-right fold that builds them.
type andExpr struct {
	left  Expr
	right termExpr
}

type orExpr struct {
	left  Expr
	right termExpr
}

func (termExpr) isExpr() {}
func (andExpr) isExpr()  {}
func (orExpr) isExpr()   {}

var (
	tagTermRe       = regexp.MustCompile(`(?i)^tag:(.+)$`)
	projectTermRe   = regexp.MustCompile(`(?i)^project:(.+)$`)
	priorityTermRe  = regexp.MustCompile(`(?i)^priority:(high|medium|low)$`)
	dueTermRe       = regexp.MustCompile(`(?i)^due:(today|overdue|none)$`)
	completedTermRe = regexp.MustCompile(`(?i)^completed:(true|false)$`)
	connectiveRe    = regexp.MustCompile(`(?i)\s+(AND|OR)\s+`)
)

// parseTerm classifies one token. Unknown tokens degrade to a title
// substring match, so every query string is accepted.
func parseTerm(token string) termExpr {
	token = strings.TrimSpace(token)
	if m := tagTermRe.FindStringSubmatch(token); m != nil {
		return termExpr{kind: termTag, value: m[1]}
	}
	if m := projectTermRe.FindStringSubmatch(token); m != nil {
		return termExpr{kind: termProject, value: strings.ToLower(m[1])}
	}
	if m := priorityTermRe.FindStringSubmatch(token); m != nil {
		return termExpr{kind: termPriority, value: strings.ToLower(m[1])}
	}
	if m := dueTermRe.FindStringSubmatch(token); m != nil {
		switch strings.ToLower(m[1]) {
		case "today":
			return termExpr{kind: termDueToday}
		case "overdue":
			return termExpr{kind: termDueOverdue}
		default:
			return termExpr{kind: termDueNone}
		}
	}
	if m := completedTermRe.FindStringSubmatch(token); m != nil {
		return termExpr{kind: termCompleted, want: strings.EqualFold(m[1], "true")}
	}
	return termExpr{kind: termTitle, value: strings.ToLower(token)}
}

// parse builds the AST by a left-to-right fold over terms and connectives.
// Mixed AND/OR chains evaluate strictly left to right; there is no
// conventional boolean-operator precedence.
func parse(query string) Expr {
	tokens := splitQuery(query)
	if len(tokens) == 0 {
		return nil
	}

	var expr Expr = parseTerm(tokens[0])
	for i := 1; i+1 < len(tokens); i += 2 {
		term := parseTerm(tokens[i+1])
		if strings.EqualFold(tokens[i], "AND") {
			expr = andExpr{left: expr, right: term}
		} else {
			expr = orExpr{left: expr, right: term}
		}
	}
	return expr
}

// splitQuery splits on whitespace-delimited AND/OR connectives, keeping the
// connectives in the result: term, op, term, op, term...
func splitQuery(query string) []string {
	var out []string
	rest := query
	for {
		loc := connectiveRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		out = append(out, rest[:loc[0]], rest[loc[2]:loc[3]])
		rest = rest[loc[1]:]
	}
	out = append(out, rest)
	return out
}

// matches evaluates a single term against one task.
func (t termExpr) matches(task model.Task, now time.Time) bool {
	switch t.kind {
	case termTag:
		for _, tag := range task.Tags {
			if tag == t.value {
				return true
			}
		}
		return false
	case termProject:
		return strings.ToLower(task.Project) == t.value
	case termPriority:
		return strings.ToLower(string(task.Priority)) == t.value
	case termDueToday:
		if task.Due == nil {
			return false
		}
		dy, dm, dd := task.Due.Year(), task.Due.Month(), task.Due.Day()
		ny, nm, nd := now.Year(), now.Month(), now.Day()
		return dy == ny && dm == nm && dd == nd
	case termDueOverdue:
		return task.Due != nil && task.Due.Before(now) && !task.Completed
	case termDueNone:
		return task.Due == nil
	case termCompleted:
		return task.Completed == t.want
	default:
		return strings.Contains(strings.ToLower(task.Title), t.value)
	}
}
