// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskkeeper/go-task-keeper/internal/cache"
	"github.com/taskkeeper/go-task-keeper/internal/logger"
	"github.com/taskkeeper/go-task-keeper/internal/store"
	"github.com/taskkeeper/go-task-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.TaskRepository
// ─────────────────────────────────────────────

type mockTaskRepository struct {
	createTaskFn       func(ctx context.Context, task models.Task) (models.Task, error)
	findTasksByOwnerFn func(ctx context.Context, ownerID int64) ([]models.Task, error)
	findTaskByIDFn     func(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	updateTaskFn       func(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	deleteTaskFn       func(ctx context.Context, ownerID, taskID int64) (models.Task, error)
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if m.createTaskFn != nil {
		return m.createTaskFn(ctx, task)
	}
	return models.Task{}, nil
}

func (m *mockTaskRepository) FindTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	if m.findTasksByOwnerFn != nil {
		return m.findTasksByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindTaskByID(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	if m.findTaskByIDFn != nil {
		return m.findTaskByIDFn(ctx, ownerID, taskID)
	}
	return models.Task{}, nil
}

func (m *mockTaskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(ctx, update)
	}
	return models.Task{}, nil
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(ctx, ownerID, taskID)
	}
	return models.Task{}, nil
}

// ─────────────────────────────────────────────
// Mock: cache.TaskCache
// ─────────────────────────────────────────────

type mockTaskCache struct {
	getFn            func(ctx context.Context, key string) cache.Lookup
	setWithTTLFn     func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteByPrefixFn func(ctx context.Context, pattern string) error
}

func (m *mockTaskCache) Get(ctx context.Context, key string) cache.Lookup {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return cache.Lookup{Outcome: cache.NotFound}
}

func (m *mockTaskCache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setWithTTLFn != nil {
		return m.setWithTTLFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockTaskCache) DeleteByPrefix(ctx context.Context, pattern string) error {
	if m.deleteByPrefixFn != nil {
		return m.deleteByPrefixFn(ctx, pattern)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestTaskService(repo *mockTaskRepository, taskCache *mockTaskCache) *taskService {
	return &taskService{
		taskRepository: repo,
		cache:          taskCache,
		ttl:            5 * time.Minute,
		logger:         logger.Nop(),
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

var errCacheDown = errors.New("cache backend down")

// ─────────────────────────────────────────────
// ListTasks
// ─────────────────────────────────────────────

func TestTaskService_ListTasks_CacheHit(t *testing.T) {
	cached := []models.Task{{TaskID: 1, Name: "From cache", OwnerID: 7}}

	repo := &mockTaskRepository{
		findTasksByOwnerFn: func(_ context.Context, _ int64) ([]models.Task, error) {
			t.Fatal("store must not be queried on a cache hit")
			return nil, nil
		},
	}
	taskCache := &mockTaskCache{
		getFn: func(_ context.Context, key string) cache.Lookup {
			assert.Equal(t, cache.ListKey(7), key)
			return cache.Lookup{Outcome: cache.Found, Value: mustJSON(t, cached)}
		},
	}
	svc := newTestTaskService(repo, taskCache)

	tasks, fromCache, err := svc.ListTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, cached, tasks)
}

func TestTaskService_ListTasks_CacheMissPopulates(t *testing.T) {
	stored := []models.Task{{TaskID: 1, Name: "From store", OwnerID: 7}}
	var populatedKey string
	var populatedTTL time.Duration

	repo := &mockTaskRepository{
		findTasksByOwnerFn: func(_ context.Context, ownerID int64) ([]models.Task, error) {
			assert.Equal(t, int64(7), ownerID)
			return stored, nil
		},
	}
	taskCache := &mockTaskCache{
		getFn: func(_ context.Context, _ string) cache.Lookup {
			return cache.Lookup{Outcome: cache.NotFound}
		},
		setWithTTLFn: func(_ context.Context, key string, value []byte, ttl time.Duration) error {
			populatedKey = key
			populatedTTL = ttl

			var snapshot []models.Task
			require.NoError(t, json.Unmarshal(value, &snapshot))
			assert.Equal(t, stored, snapshot)
			return nil
		},
	}
	svc := newTestTaskService(repo, taskCache)

	tasks, fromCache, err := svc.ListTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, stored, tasks)
	assert.Equal(t, cache.ListKey(7), populatedKey)
	assert.Equal(t, 5*time.Minute, populatedTTL)
}

func TestTaskService_ListTasks_CacheUnavailableFallsThrough(t *testing.T) {
	stored := []models.Task{{TaskID: 1, OwnerID: 7}}

	repo := &mockTaskRepository{
		findTasksByOwnerFn: func(_ context.Context, _ int64) ([]models.Task, error) {
			return stored, nil
		},
	}
	taskCache := &mockTaskCache{
		getFn: func(_ context.Context, _ string) cache.Lookup {
			return cache.Lookup{Outcome: cache.Unavailable}
		},
		setWithTTLFn: func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
			t.Fatal("an unavailable backend must not be written to")
			return nil
		},
	}
	svc := newTestTaskService(repo, taskCache)

	tasks, fromCache, err := svc.ListTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, stored, tasks)
}

func TestTaskService_ListTasks_CorruptedEntryFallsBack(t *testing.T) {
	stored := []models.Task{{TaskID: 1, OwnerID: 7}}

	repo := &mockTaskRepository{
		findTasksByOwnerFn: func(_ context.Context, _ int64) ([]models.Task, error) {
			return stored, nil
		},
	}
	taskCache := &mockTaskCache{
		getFn: func(_ context.Context, _ string) cache.Lookup {
			return cache.Lookup{Outcome: cache.Found, Value: []byte("{not json")}
		},
	}
	svc := newTestTaskService(repo, taskCache)

	tasks, fromCache, err := svc.ListTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, stored, tasks)
}

func TestTaskService_ListTasks_StoreError(t *testing.T) {
	repo := &mockTaskRepository{
		findTasksByOwnerFn: func(_ context.Context, _ int64) ([]models.Task, error) {
			return nil, errors.New("db down")
		},
	}
	svc := newTestTaskService(repo, &mockTaskCache{})

	_, _, err := svc.ListTasks(context.Background(), 7)
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// GetTask
// ─────────────────────────────────────────────

func TestTaskService_GetTask_CacheHit(t *testing.T) {
	cached := models.Task{TaskID: 3, Name: "From cache", OwnerID: 7}

	repo := &mockTaskRepository{
		findTaskByIDFn: func(_ context.Context, _, _ int64) (models.Task, error) {
			t.Fatal("store must not be queried on a cache hit")
			return models.Task{}, nil
		},
	}
	taskCache := &mockTaskCache{
		getFn: func(_ context.Context, key string) cache.Lookup {
			assert.Equal(t, cache.ItemKey(7, 3), key)
			return cache.Lookup{Outcome: cache.Found, Value: mustJSON(t, cached)}
		},
	}
	svc := newTestTaskService(repo, taskCache)

	task, fromCache, err := svc.GetTask(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, cached, task)
}

func TestTaskService_GetTask_MissPopulatesItemKey(t *testing.T) {
	stored := models.Task{TaskID: 3, Name: "From store", OwnerID: 7}
	var populatedKey string

	repo := &mockTaskRepository{
		findTaskByIDFn: func(_ context.Context, ownerID, taskID int64) (models.Task, error) {
			assert.Equal(t, int64(7), ownerID)
			assert.Equal(t, int64(3), taskID)
			return stored, nil
		},
	}
	taskCache := &mockTaskCache{
		setWithTTLFn: func(_ context.Context, key string, _ []byte, _ time.Duration) error {
			populatedKey = key
			return nil
		},
	}
	svc := newTestTaskService(repo, taskCache)

	task, fromCache, err := svc.GetTask(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, stored, task)
	assert.Equal(t, cache.ItemKey(7, 3), populatedKey)
}

func TestTaskService_GetTask_CacheUnavailableSkipsRepopulate(t *testing.T) {
	stored := models.Task{TaskID: 3, OwnerID: 7}

	repo := &mockTaskRepository{
		findTaskByIDFn: func(_ context.Context, _, _ int64) (models.Task, error) {
			return stored, nil
		},
	}
	taskCache := &mockTaskCache{
		getFn: func(_ context.Context, _ string) cache.Lookup {
			return cache.Lookup{Outcome: cache.Unavailable}
		},
		setWithTTLFn: func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
			t.Fatal("an unavailable backend must not be written to")
			return nil
		},
	}
	svc := newTestTaskService(repo, taskCache)

	task, fromCache, err := svc.GetTask(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, stored, task)
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	repo := &mockTaskRepository{
		findTaskByIDFn: func(_ context.Context, _, _ int64) (models.Task, error) {
			return models.Task{}, store.ErrNoTaskWasFound
		},
	}
	svc := newTestTaskService(repo, &mockTaskCache{})

	_, _, err := svc.GetTask(context.Background(), 7, 404)
	require.ErrorIs(t, err, store.ErrNoTaskWasFound)
}

// ─────────────────────────────────────────────
// CreateTask
// ─────────────────────────────────────────────

func TestTaskService_CreateTask_InvalidatesOwnerNamespace(t *testing.T) {
	var invalidated string

	repo := &mockTaskRepository{
		createTaskFn: func(_ context.Context, task models.Task) (models.Task, error) {
			task.TaskID = 1
			return task, nil
		},
	}
	taskCache := &mockTaskCache{
		deleteByPrefixFn: func(_ context.Context, pattern string) error {
			invalidated = pattern
			return nil
		},
	}
	svc := newTestTaskService(repo, taskCache)

	created, err := svc.CreateTask(context.Background(), models.Task{
		Name:    "Buy groceries",
		DueDate: models.NewDate(2026, time.September, 15),
		OwnerID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.TaskID)
	assert.Equal(t, cache.OwnerPattern(7), invalidated)
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{}, &mockTaskCache{})

	tests := []struct {
		name string
		task models.Task
	}{
		{"missing name", models.Task{DueDate: models.NewDate(2026, time.September, 15), OwnerID: 7}},
		{"missing due date", models.Task{Name: "x", OwnerID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(context.Background(), tt.task)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestTaskService_CreateTask_InvalidationFailureIsSwallowed(t *testing.T) {
	repo := &mockTaskRepository{
		createTaskFn: func(_ context.Context, task models.Task) (models.Task, error) {
			task.TaskID = 1
			return task, nil
		},
	}
	taskCache := &mockTaskCache{
		deleteByPrefixFn: func(_ context.Context, _ string) error {
			return errCacheDown
		},
	}
	svc := newTestTaskService(repo, taskCache)

	_, err := svc.CreateTask(context.Background(), models.Task{
		Name:    "Buy groceries",
		DueDate: models.NewDate(2026, time.September, 15),
		OwnerID: 7,
	})

	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// UpdateTask / DeleteTask
// ─────────────────────────────────────────────

func TestTaskService_UpdateTask_InvalidatesOwnerNamespace(t *testing.T) {
	var invalidated string
	name := "Renamed"

	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			assert.Equal(t, int64(3), update.ID)
			assert.Equal(t, int64(7), update.OwnerID)
			return models.Task{TaskID: 3, Name: *update.Name, OwnerID: 7}, nil
		},
	}
	taskCache := &mockTaskCache{
		deleteByPrefixFn: func(_ context.Context, pattern string) error {
			invalidated = pattern
			return nil
		},
	}
	svc := newTestTaskService(repo, taskCache)

	updated, err := svc.UpdateTask(context.Background(), models.TaskUpdate{ID: 3, OwnerID: 7, Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, cache.OwnerPattern(7), invalidated)
}

func TestTaskService_UpdateTask_EmptyNameNotApplied(t *testing.T) {
	emptyName := ""
	description := "still applied"

	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			// a blank name must be treated as "not provided", never written
			assert.Nil(t, update.Name)
			require.NotNil(t, update.Description)
			assert.Equal(t, "still applied", *update.Description)
			return models.Task{TaskID: 3, Name: "Kept name", Description: *update.Description, OwnerID: 7}, nil
		},
	}
	svc := newTestTaskService(repo, &mockTaskCache{})

	updated, err := svc.UpdateTask(context.Background(), models.TaskUpdate{
		ID:          3,
		OwnerID:     7,
		Name:        &emptyName,
		Description: &description,
	})

	require.NoError(t, err)
	assert.Equal(t, "Kept name", updated.Name)
}

func TestTaskService_UpdateTask_ZeroDueDateNotApplied(t *testing.T) {
	zeroDue := models.Date{}

	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			assert.Nil(t, update.DueDate)
			return models.Task{TaskID: 3, OwnerID: 7}, nil
		},
	}
	svc := newTestTaskService(repo, &mockTaskCache{})

	_, err := svc.UpdateTask(context.Background(), models.TaskUpdate{
		ID:      3,
		OwnerID: 7,
		DueDate: &zeroDue,
	})

	require.NoError(t, err)
}

func TestTaskService_UpdateTask_EmptyDescriptionApplied(t *testing.T) {
	emptyDescription := ""

	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			require.NotNil(t, update.Description)
			assert.Equal(t, "", *update.Description)
			return models.Task{TaskID: 3, OwnerID: 7}, nil
		},
	}
	svc := newTestTaskService(repo, &mockTaskCache{})

	_, err := svc.UpdateTask(context.Background(), models.TaskUpdate{
		ID:          3,
		OwnerID:     7,
		Description: &emptyDescription,
	})

	require.NoError(t, err)
}

func TestTaskService_UpdateTask_MissingID(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{}, &mockTaskCache{})

	_, err := svc.UpdateTask(context.Background(), models.TaskUpdate{OwnerID: 7})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, _ models.TaskUpdate) (models.Task, error) {
			return models.Task{}, store.ErrNoTaskWasFound
		},
	}
	svc := newTestTaskService(repo, &mockTaskCache{})

	_, err := svc.UpdateTask(context.Background(), models.TaskUpdate{ID: 3, OwnerID: 8})
	require.ErrorIs(t, err, store.ErrNoTaskWasFound)
}

func TestTaskService_DeleteTask_InvalidatesOwnerNamespace(t *testing.T) {
	var invalidated string

	repo := &mockTaskRepository{
		deleteTaskFn: func(_ context.Context, ownerID, taskID int64) (models.Task, error) {
			return models.Task{TaskID: taskID, OwnerID: ownerID}, nil
		},
	}
	taskCache := &mockTaskCache{
		deleteByPrefixFn: func(_ context.Context, pattern string) error {
			invalidated = pattern
			return nil
		},
	}
	svc := newTestTaskService(repo, taskCache)

	deleted, err := svc.DeleteTask(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted.TaskID)
	assert.Equal(t, cache.OwnerPattern(7), invalidated)
}

func TestTaskService_DeleteTask_MissingID(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{}, &mockTaskCache{})

	_, err := svc.DeleteTask(context.Background(), 7, 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// ClearCache
// ─────────────────────────────────────────────

func TestTaskService_ClearCache_DropsNamespace(t *testing.T) {
	var invalidated string

	taskCache := &mockTaskCache{
		deleteByPrefixFn: func(_ context.Context, pattern string) error {
			invalidated = pattern
			return nil
		},
	}
	svc := newTestTaskService(&mockTaskRepository{}, taskCache)

	svc.ClearCache(context.Background(), 7)

	assert.Equal(t, cache.OwnerPattern(7), invalidated)
}

func TestTaskService_ClearCache_SwallowsBackendError(t *testing.T) {
	taskCache := &mockTaskCache{
		deleteByPrefixFn: func(_ context.Context, _ string) error {
			return errCacheDown
		},
	}
	svc := newTestTaskService(&mockTaskRepository{}, taskCache)

	// must not panic or surface the error in any way
	svc.ClearCache(context.Background(), 7)
}
