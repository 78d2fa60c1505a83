package store

import (
	"context"

	"github.com/taskkeeper/go-task-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its exact email.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TaskRepository persists task records. Every method is scoped to the
// owning user: a task belonging to another owner behaves exactly like a
// missing task.
type TaskRepository interface {
	// CreateTask inserts a new task and returns it with server-assigned
	// fields (TaskID, CreatedAt) populated.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// FindTasksByOwner returns all of the owner's tasks ordered by
	// creation time descending (newest first).
	FindTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)

	// FindTaskByID returns the owner's task with the given id, or
	// ErrNoTaskWasFound.
	FindTaskByID(ctx context.Context, ownerID, taskID int64) (models.Task, error)

	// UpdateTask applies the non-nil fields of update to the matching
	// task and returns the updated record, or ErrNoTaskWasFound.
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes the owner's task with the given id and returns
	// the deleted record, or ErrNoTaskWasFound.
	DeleteTask(ctx context.Context, ownerID, taskID int64) (models.Task, error)
}
