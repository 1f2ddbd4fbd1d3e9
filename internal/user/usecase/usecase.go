package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"pro-todo-backend/internal/model"
	taskRepo "pro-todo-backend/internal/task/repository"
	"pro-todo-backend/internal/user"
	"pro-todo-backend/internal/user/repository"
	pkgLog "pro-todo-backend/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	tasks taskRepo.Repository
}

// New creates a new user UseCase instance. The task repository is needed
// for the cascading delete.
func New(l pkgLog.Logger, repo repository.Repository, tasks taskRepo.Repository) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		tasks: tasks,
	}
}

// Create registers a user. The ID is a slug of the name; when the slug is
// taken or degenerates to nothing, a random suffix or id takes its place.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (model.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.User{}, user.ErrEmptyName
	}

	id := slugify(name)
	if id == "" {
		id = uuid.NewString()
	} else {
		taken, err := uc.repo.Exists(ctx, id)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to check user id: %w", err)
		}
		if taken {
			id = id + "-" + uuid.NewString()[:8]
		}
	}

	created, err := uc.repo.Create(ctx, repository.CreateUserOptions{ID: id, Name: name})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	uc.l.Infof(ctx, "Create: user=%s name=%q", created.ID, created.Name)
	return created, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]model.User, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.User, error) {
	u, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Delete removes the user and every task they own.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.tasks.DeleteAll(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user tasks: %w", err)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.l.Infof(ctx, "Delete: user=%s removed with tasks", id)
	return nil
}

// slugify lowercases the name and collapses every non-alphanumeric run
// into a single dash.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
