// Package memory is the in-process task store. It backs local development
// and tests; production deployments use the firestore implementation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]map[string]model.Task // userID → taskID → task
	seq   map[string]int64                 // creation sequence per task, disambiguates equal createdAt
	clock func() time.Time
}

// New creates an empty in-memory task repository.
func New() repository.Repository {
	return &implRepository{
		tasks: make(map[string]map[string]model.Task),
		seq:   make(map[string]int64),
		clock: time.Now,
	}
}

// NewWithClock creates a repository with an injected clock for tests.
func NewWithClock(clock func() time.Time) repository.Repository {
	r := New().(*implRepository)
	r.clock = clock
	return r
}

func (r *implRepository) Create(ctx context.Context, userID string, opt repository.CreateTaskOptions) (model.Task, error) {
	now := r.clock()
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Tags:        append([]string(nil), opt.Tags...),
		Project:     opt.Project,
		Area:        opt.Area,
		Priority:    opt.Priority,
		Due:         opt.Due,
		Repeat:      opt.Repeat,
		Reminder:    opt.Reminder,
		Completed:   opt.Completed,
		CompletedAt: opt.CompletedAt,
		Subtasks:    append([]model.Subtask(nil), opt.Subtasks...),
		Notes:       opt.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tasks[userID] == nil {
		r.tasks[userID] = make(map[string]model.Task)
	}
	r.tasks[userID][t.ID] = t
	r.seq[t.ID] = int64(len(r.seq) + 1)
	return t, nil
}

func (r *implRepository) Get(ctx context.Context, userID, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[userID][id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) List(ctx context.Context, userID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.tasks[userID]))
	for _, t := range r.tasks[userID] {
		out = append(out, t)
	}
	// Newest first, matching the store's subscription ordering.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, userID, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[userID][id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	applyPatch(&t, opt)
	t.UpdatedAt = r.clock()
	r.tasks[userID][id] = t
	return t, nil
}

func (r *implRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[userID][id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks[userID], id)
	delete(r.seq, id)
	return nil
}

func (r *implRepository) DeleteAll(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.tasks[userID] {
		delete(r.seq, id)
	}
	delete(r.tasks, userID)
	return nil
}

func applyPatch(t *model.Task, opt repository.UpdateTaskOptions) {
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Notes != nil {
		t.Notes = *opt.Notes
	}
	if opt.Project != nil {
		t.Project = *opt.Project
	}
	if opt.Area != nil {
		t.Area = *opt.Area
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Tags != nil {
		t.Tags = append([]string(nil), (*opt.Tags)...)
	}
	if opt.Reminder != nil {
		t.Reminder = *opt.Reminder
	}
	if opt.Subtasks != nil {
		t.Subtasks = append([]model.Subtask(nil), (*opt.Subtasks)...)
	}
	if opt.ClearDue {
		t.Due = nil
	} else if opt.Due != nil {
		t.Due = opt.Due
	}
	if opt.ClearRepeat {
		t.Repeat = nil
	} else if opt.Repeat != nil {
		t.Repeat = opt.Repeat
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.ClearCompletedAt {
		t.CompletedAt = nil
	} else if opt.CompletedAt != nil {
		t.CompletedAt = opt.CompletedAt
	}
}
