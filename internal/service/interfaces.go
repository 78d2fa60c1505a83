package service

import (
	"context"

	"github.com/taskkeeper/go-task-keeper/models"
)

// AuthService issues and verifies the bearer credentials that gate every
// task operation.
type AuthService interface {
	// RegisterUser creates a new account from an email and a plain-text
	// password.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed, time-bounded bearer token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and returns the decoded
	// caller identity. Pure computation; no store lookup.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService orchestrates the task store and the cache layer to answer
// CRUD requests with cache-aside semantics.
//
// The bool returned by the read paths reports whether the result came from
// the cache snapshot (true) or the store (false).
type TaskService interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, ownerID int64) ([]models.Task, bool, error)
	GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, bool, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) (models.Task, error)

	// ClearCache drops the owner's entire cache namespace. It always
	// succeeds from the caller's perspective; a failed delete is logged
	// and the entries are left to expire.
	ClearCache(ctx context.Context, ownerID int64)
}
