// Package firestore stores tasks in Cloud Firestore under
// users/{userID}/tasks, the same layout the web client reads.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/task/repository"
	pkgLog "pro-todo-backend/pkg/log"
)

type implRepository struct {
	client *firestore.Client
	l      pkgLog.Logger
}

// NewClient connects to Cloud Firestore. credentialsPath may be empty, in
// which case Application Default Credentials apply.
func NewClient(ctx context.Context, projectID, credentialsPath string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

// New creates a Firestore-backed task repository.
func New(client *firestore.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) tasks(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("tasks")
}

func (r *implRepository) Create(ctx context.Context, userID string, opt repository.CreateTaskOptions) (model.Task, error) {
	doc := r.tasks(userID).NewDoc()

	t := model.Task{
		Title:       opt.Title,
		Tags:        opt.Tags,
		Project:     opt.Project,
		Area:        opt.Area,
		Priority:    opt.Priority,
		Due:         opt.Due,
		Repeat:      opt.Repeat,
		Reminder:    opt.Reminder,
		Completed:   opt.Completed,
		CompletedAt: opt.CompletedAt,
		Subtasks:    opt.Subtasks,
		Notes:       opt.Notes,
		// CreatedAt/UpdatedAt are zero: the serverTimestamp tags let the
		// store assign them.
	}

	if _, err := doc.Set(ctx, t); err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	// Re-read so the caller sees the server-assigned timestamps.
	return r.Get(ctx, userID, doc.ID)
}

func (r *implRepository) Get(ctx context.Context, userID, id string) (model.Task, error) {
	snap, err := r.tasks(userID).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Task{}, repository.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return decode(snap)
}

func (r *implRepository) List(ctx context.Context, userID string) ([]model.Task, error) {
	iter := r.tasks(userID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []model.Task
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		t, decErr := decode(snap)
		if decErr != nil {
			r.l.Warnf(ctx, "firestore: skipping undecodable task %s: %v", snap.Ref.ID, decErr)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, userID, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	updates := buildUpdates(opt)
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := r.tasks(userID).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Task{}, repository.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return r.Get(ctx, userID, id)
}

func (r *implRepository) Delete(ctx context.Context, userID, id string) error {
	// Existence check first: bare Delete is a no-op on missing docs.
	if _, err := r.Get(ctx, userID, id); err != nil {
		return err
	}
	if _, err := r.tasks(userID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}

func (r *implRepository) DeleteAll(ctx context.Context, userID string) error {
	iter := r.tasks(userID).Documents(ctx)
	defer iter.Stop()

	bw := r.client.BulkWriter(ctx)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to enumerate tasks: %w", err)
		}
		if _, err := bw.Delete(snap.Ref); err != nil {
			return fmt.Errorf("failed to queue delete for %s: %w", snap.Ref.ID, err)
		}
	}
	bw.End()
	return nil
}

func decode(snap *firestore.DocumentSnapshot) (model.Task, error) {
	var t model.Task
	if err := snap.DataTo(&t); err != nil {
		return model.Task{}, fmt.Errorf("failed to decode task %s: %w", snap.Ref.ID, err)
	}
	t.ID = snap.Ref.ID
	return t, nil
}

func buildUpdates(opt repository.UpdateTaskOptions) []firestore.Update {
	var updates []firestore.Update
	add := func(path string, value any) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if opt.Title != nil {
		add("title", *opt.Title)
	}
	if opt.Notes != nil {
		add("notes", *opt.Notes)
	}
	if opt.Project != nil {
		add("project", *opt.Project)
	}
	if opt.Area != nil {
		add("area", *opt.Area)
	}
	if opt.Priority != nil {
		add("priority", *opt.Priority)
	}
	if opt.Tags != nil {
		add("tags", *opt.Tags)
	}
	if opt.Reminder != nil {
		add("reminder", *opt.Reminder)
	}
	if opt.Subtasks != nil {
		add("subtasks", *opt.Subtasks)
	}
	if opt.ClearDue {
		add("due", nil)
	} else if opt.Due != nil {
		add("due", *opt.Due)
	}
	if opt.ClearRepeat {
		add("repeat", nil)
	} else if opt.Repeat != nil {
		add("repeat", *opt.Repeat)
	}
	if opt.Completed != nil {
		add("completed", *opt.Completed)
	}
	if opt.ClearCompletedAt {
		add("completedAt", nil)
	} else if opt.CompletedAt != nil {
		add("completedAt", *opt.CompletedAt)
	}
	return updates
}
