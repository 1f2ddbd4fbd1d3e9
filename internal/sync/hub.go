// Package sync delivers live task-list updates to subscribed clients.
// Every mutation republishes the owner's full task list; subscribers never
// receive partial deltas.
package sync

import (
	"context"
	sysync "sync"

	"pro-todo-backend/internal/model"
	pkgLog "pro-todo-backend/pkg/log"
)

// Subscription is one client's feed of task-list snapshots.
type Subscription struct {
	C      <-chan []model.Task
	ch     chan []model.Task
	cancel func()
}

// Close detaches the subscription from the hub.
func (s *Subscription) Close() { s.cancel() }

// Hub fans task-list snapshots out to per-user subscribers.
type Hub struct {
	l pkgLog.Logger

	mu   sysync.RWMutex
	subs map[string]map[chan []model.Task]struct{}
}

// NewHub creates an empty hub.
func NewHub(l pkgLog.Logger) *Hub {
	return &Hub{
		l:    l,
		subs: make(map[string]map[chan []model.Task]struct{}),
	}
}

// Subscribe registers a listener for one user's task list. Each channel is
// buffered for a single snapshot; a slow consumer only ever misses
// intermediate states, never the latest one.
func (h *Hub) Subscribe(userID string) *Subscription {
	ch := make(chan []model.Task, 1)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan []model.Task]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	return &Subscription{
		C:  ch,
		ch: ch,
		cancel: func() {
			h.mu.Lock()
			if set, ok := h.subs[userID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, userID)
				}
			}
			h.mu.Unlock()
		},
	}
}

// Publish pushes the user's current full task list to every subscriber.
// Sends never block: a pending, unconsumed snapshot is replaced.
func (h *Hub) Publish(ctx context.Context, userID string, tasks []model.Task) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.subs[userID]
	if len(set) == 0 {
		return
	}
	h.l.Debugf(ctx, "sync: publishing %d tasks to %d subscribers for user %s", len(tasks), len(set), userID)

	for ch := range set {
		select {
		case ch <- tasks:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- tasks:
			default:
			}
		}
	}
}
