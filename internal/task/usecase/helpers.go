package usecase

import (
	"context"

	"pro-todo-backend/internal/model"
)

// publish pushes the user's current full task list to live subscribers.
// Best effort: a publish failure never fails the mutation that caused it.
func (uc *implUseCase) publish(ctx context.Context, userID string) {
	if uc.hub == nil {
		return
	}
	tasks, err := uc.repo.List(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "publish: failed to list tasks for user %s: %v", userID, err)
		return
	}
	uc.hub.Publish(ctx, userID, tasks)
}

// dedupeTags drops repeated tags, keeping first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// normalizeArea falls back to Personal for unknown values.
func normalizeArea(a model.Area) model.Area {
	if a.Valid() {
		return a
	}
	return model.AreaPersonal
}

// normalizePriority falls back to Medium for unknown values.
func normalizePriority(p model.Priority) model.Priority {
	if p.Valid() {
		return p
	}
	return model.PriorityMedium
}
