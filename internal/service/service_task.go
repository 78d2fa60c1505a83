package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskkeeper/go-task-keeper/internal/cache"
	"github.com/taskkeeper/go-task-keeper/internal/config"
	"github.com/taskkeeper/go-task-keeper/internal/logger"
	"github.com/taskkeeper/go-task-keeper/internal/store"
	"github.com/taskkeeper/go-task-keeper/models"
)

// taskService is the concrete implementation of TaskService.
//
// Reads are cache-aside: check the cache first, fall back to the store on a
// miss (or on any cache fault) and repopulate the entry with the configured
// TTL. Writes go to the store first, then invalidate the owner's whole cache
// namespace; a failed invalidation is logged and left for the TTL to clean
// up — the accepted bounded-staleness window.
type taskService struct {
	taskRepository store.TaskRepository
	cache          cache.TaskCache
	ttl            time.Duration
	logger         *logger.Logger
}

// NewTaskService wires the task orchestration to its repository and cache.
func NewTaskService(taskRepository store.TaskRepository, taskCache cache.TaskCache, cfg config.Cache, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		cache:          taskCache,
		ttl:            cfg.TTL,
		logger:         logger,
	}
}

// CreateTask validates and persists a new task, then invalidates the owner's
// cache namespace so the next read repopulates from the store.
//
// Returns ErrInvalidDataProvided if the name or the due date is missing.
func (s *taskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.Name == "" || task.DueDate.IsZero() {
		log.Error().Int64("owner", task.OwnerID).Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Int64("owner", task.OwnerID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	s.invalidateOwner(ctx, created.OwnerID)

	return created, nil
}

// ListTasks returns all of the owner's tasks, newest first.
//
// The bool result reports a cache hit. A cached snapshot may be stale within
// the TTL window if an earlier invalidation failed; that is the documented
// consistency contract, not an error.
func (s *taskService) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, bool, error) {
	log := logger.FromContext(ctx)
	key := cache.ListKey(ownerID)

	lookup := s.cache.Get(ctx, key)
	if lookup.Hit() {
		var tasks []models.Task
		if err := json.Unmarshal(lookup.Value, &tasks); err == nil {
			return tasks, true, nil
		}
		log.Warn().Str("key", key).Msg("corrupted cache entry, falling back to store")
	}

	tasks, err := s.taskRepository.FindTasksByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("task list query ended with error")
		return nil, false, fmt.Errorf("task list query ended with error: %w", err)
	}

	if lookup.Outcome != cache.Unavailable {
		s.populate(ctx, key, tasks)
	}

	return tasks, false, nil
}

// GetTask returns one of the owner's tasks by id, with the same cache-aside
// shape as ListTasks but keyed per item.
//
// The lookup is ownership-scoped: a task owned by someone else yields
// store.ErrNoTaskWasFound.
func (s *taskService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, bool, error) {
	log := logger.FromContext(ctx)
	key := cache.ItemKey(ownerID, taskID)

	lookup := s.cache.Get(ctx, key)
	if lookup.Hit() {
		var task models.Task
		if err := json.Unmarshal(lookup.Value, &task); err == nil {
			return task, true, nil
		}
		log.Warn().Str("key", key).Msg("corrupted cache entry, falling back to store")
	}

	task, err := s.taskRepository.FindTaskByID(ctx, ownerID, taskID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Int64("task", taskID).Msg("task lookup ended with error")
		return models.Task{}, false, fmt.Errorf("task lookup ended with error: %w", err)
	}

	if lookup.Outcome != cache.Unavailable {
		s.populate(ctx, key, task)
	}

	return task, false, nil
}

// UpdateTask applies the provided subset of fields to the caller's task and
// invalidates the caller's cache namespace.
//
// Returns ErrInvalidDataProvided when the task id is absent, and passes
// store.ErrNoTaskWasFound through when the id does not match a task owned
// by the caller.
func (s *taskService) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.ID == 0 {
		log.Error().Int64("owner", update.OwnerID).Msg("task update without id")
		return models.Task{}, ErrInvalidDataProvided
	}

	// An empty name or a zero due date counts as "not provided", never as a
	// request to blank a required column. A description may be emptied.
	if update.Name != nil && *update.Name == "" {
		update.Name = nil
	}
	if update.DueDate != nil && update.DueDate.IsZero() {
		update.DueDate = nil
	}

	updated, err := s.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).Int64("owner", update.OwnerID).Int64("task", update.ID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	s.invalidateOwner(ctx, update.OwnerID)

	return updated, nil
}

// DeleteTask removes the caller's task by id, invalidates the caller's cache
// namespace and returns the deleted record.
func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	if taskID == 0 {
		log.Error().Int64("owner", ownerID).Msg("task delete without id")
		return models.Task{}, ErrInvalidDataProvided
	}

	deleted, err := s.taskRepository.DeleteTask(ctx, ownerID, taskID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Int64("task", taskID).Msg("task delete ended with error")
		return models.Task{}, fmt.Errorf("task delete ended with error: %w", err)
	}

	s.invalidateOwner(ctx, ownerID)

	return deleted, nil
}

// ClearCache unconditionally drops the owner's cache namespace. Always
// succeeds from the caller's perspective.
func (s *taskService) ClearCache(ctx context.Context, ownerID int64) {
	s.invalidateOwner(ctx, ownerID)
}

// populate writes a snapshot to the cache with the configured TTL.
// Best-effort: serialization or cache faults are logged, never returned.
func (s *taskService) populate(ctx context.Context, key string, snapshot any) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Err(err).Str("key", key).Msg("cache snapshot serialization failed")
		return
	}

	if err := s.cache.SetWithTTL(ctx, key, data, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// invalidateOwner deletes every cache key in the owner's namespace.
// A failure leaves stale entries that self-heal when their TTL lapses, so it
// is logged and swallowed.
func (s *taskService) invalidateOwner(ctx context.Context, ownerID int64) {
	log := logger.FromContext(ctx)

	if err := s.cache.DeleteByPrefix(ctx, cache.OwnerPattern(ownerID)); err != nil {
		log.Warn().Err(err).Int64("owner", ownerID).Msg("cache invalidation failed, entries left to expire")
	}
}
