// Package memory holds users in process memory. It backs local development
// and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/user/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
	clock func() time.Time
}

// New creates an empty in-memory user repository.
func New() *implRepository {
	return &implRepository{
		users: make(map[string]model.User),
		clock: time.Now,
	}
}

// NewWithClock creates a repository with a fixed clock. Tests use this to
// pin timestamps.
func NewWithClock(clock func() time.Time) *implRepository {
	r := New()
	r.clock = clock
	return r
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := model.User{
		ID:        opt.ID,
		Name:      opt.Name,
		CreatedAt: r.clock().UTC(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *implRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok, nil
}
