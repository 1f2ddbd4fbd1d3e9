// Package taskquery filters task collections with a small textual boolean
// query language: `tag:urgent AND due:today OR project:Work`.
//
// Connectives fold strictly left to right: `a AND b OR c` is
// `(a AND b) OR c`, not conventional boolean precedence. Every subsequent
// term is matched against the original, unfiltered collection; AND
// intersects the running result (preserving its order), OR appends matches
// not already present.
package taskquery

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"pro-todo-backend/internal/model"
)

const compiledCacheSize = 256

// Evaluator evaluates saved queries against task collections. Compiled
// expressions are cached, keyed by the raw query string.
type Evaluator struct {
	compiled *lru.Cache[string, Expr]
}

// New creates an Evaluator with an LRU-backed compile cache.
func New() *Evaluator {
	cache, _ := lru.New[string, Expr](compiledCacheSize)
	return &Evaluator{compiled: cache}
}

// Evaluate returns the order-preserving subsequence of tasks matching the
// query. An empty or whitespace-only query returns the incomplete tasks
// (the default view). now anchors due:today and due:overdue.
func (e *Evaluator) Evaluate(tasks []model.Task, query string, now time.Time) []model.Task {
	if strings.TrimSpace(query) == "" {
		out := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if !t.Completed {
				out = append(out, t)
			}
		}
		return out
	}

	expr := e.compile(query)
	if expr == nil {
		return tasks
	}
	return eval(expr, tasks, now)
}

func (e *Evaluator) compile(query string) Expr {
	if expr, ok := e.compiled.Get(query); ok {
		return expr
	}
	expr := parse(query)
	e.compiled.Add(query, expr)
	return expr
}

// eval walks the left-leaning AST. Each term filters the full collection;
// the connectives combine those match sets.
func eval(expr Expr, tasks []model.Task, now time.Time) []model.Task {
	switch ex := expr.(type) {
	case termExpr:
		return filter(tasks, ex, now)
	case andExpr:
		left := eval(ex.left, tasks, now)
		right := filter(tasks, ex.right, now)
		return intersect(left, right)
	case orExpr:
		left := eval(ex.left, tasks, now)
		right := filter(tasks, ex.right, now)
		return union(left, right)
	default:
		return tasks
	}
}

func filter(tasks []model.Task, term termExpr, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if term.matches(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// intersect keeps the elements of left that also appear in right,
// preserving left's order.
func intersect(left, right []model.Task) []model.Task {
	ids := make(map[string]struct{}, len(right))
	for _, t := range right {
		ids[t.ID] = struct{}{}
	}
	out := make([]model.Task, 0, len(left))
	for _, t := range left {
		if _, ok := ids[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}

// union appends the elements of right not already present in left.
func union(left, right []model.Task) []model.Task {
	ids := make(map[string]struct{}, len(left))
	for _, t := range left {
		ids[t.ID] = struct{}{}
	}
	out := left
	for _, t := range right {
		if _, ok := ids[t.ID]; !ok {
			ids[t.ID] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
