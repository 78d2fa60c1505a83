package http

import (
	"context"

	"github.com/taskkeeper/go-task-keeper/internal/logger"
	"github.com/taskkeeper/go-task-keeper/internal/service"
	"github.com/taskkeeper/go-task-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 7}, nil
}

// ─────────────────────────────────────────────
// Mock: service.TaskService
// ─────────────────────────────────────────────

type mockTaskService struct {
	createTaskFn func(ctx context.Context, task models.Task) (models.Task, error)
	listTasksFn  func(ctx context.Context, ownerID int64) ([]models.Task, bool, error)
	getTaskFn    func(ctx context.Context, ownerID, taskID int64) (models.Task, bool, error)
	updateTaskFn func(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	deleteTaskFn func(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	clearCacheFn func(ctx context.Context, ownerID int64)
}

func (m *mockTaskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if m.createTaskFn != nil {
		return m.createTaskFn(ctx, task)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, bool, error) {
	if m.listTasksFn != nil {
		return m.listTasksFn(ctx, ownerID)
	}
	return nil, false, nil
}

func (m *mockTaskService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, bool, error) {
	if m.getTaskFn != nil {
		return m.getTaskFn(ctx, ownerID, taskID)
	}
	return models.Task{}, false, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(ctx, update)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(ctx, ownerID, taskID)
	}
	return models.Task{}, nil
}

func (m *mockTaskService) ClearCache(ctx context.Context, ownerID int64) {
	if m.clearCacheFn != nil {
		m.clearCacheFn(ctx, ownerID)
	}
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestHandler(auth *mockAuthService, tasks *mockTaskService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if tasks == nil {
		tasks = &mockTaskService{}
	}
	return NewHandler(&service.Services{
		AuthService: auth,
		TaskService: tasks,
	}, logger.Nop())
}
