// Package firestore stores users as documents of the top-level users
// collection, keyed by their slug id.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/user/repository"
	pkgLog "pro-todo-backend/pkg/log"
)

type implRepository struct {
	client *firestore.Client
	l      pkgLog.Logger
}

// New creates a Firestore-backed user repository.
func New(client *firestore.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) users() *firestore.CollectionRef {
	return r.client.Collection("users")
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	u := model.User{Name: opt.Name}
	if _, err := r.users().Doc(opt.ID).Set(ctx, u); err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return r.Get(ctx, opt.ID)
}

func (r *implRepository) Get(ctx context.Context, id string) (model.User, error) {
	snap, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return decode(snap)
}

func (r *implRepository) List(ctx context.Context) ([]model.User, error) {
	iter := r.users().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []model.User
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		u, decErr := decode(snap)
		if decErr != nil {
			r.l.Warnf(ctx, "firestore: skipping undecodable user %s: %v", snap.Ref.ID, decErr)
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if _, err := r.users().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

func (r *implRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user %s: %w", id, err)
	}
	return true, nil
}

func decode(snap *firestore.DocumentSnapshot) (model.User, error) {
	var u model.User
	if err := snap.DataTo(&u); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user %s: %w", snap.Ref.ID, err)
	}
	u.ID = snap.Ref.ID
	return u, nil
}
