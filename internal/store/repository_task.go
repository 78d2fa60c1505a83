package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskkeeper/go-task-keeper/internal/logger"
	"github.com/taskkeeper/go-task-keeper/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Every statement carries the owner id in its WHERE clause, so a foreign
// task is indistinguishable from a missing one.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned fields
// (TaskID, CreatedAt) populated from the RETURNING clause.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.Name, task.Description, task.DueDate, task.OwnerID)

	created, err := scanTask(row)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: task insert failed")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindTasksByOwner returns all tasks owned by ownerID, newest first.
// An owner without tasks yields an empty slice, not an error.
func (r *taskRepository) FindTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findTasksByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByOwner").Msg("error: task list query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.TaskID, &task.Name, &task.Description, &task.DueDate, &task.OwnerID, &task.CreatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.FindTasksByOwner").Msg("error: scanning error")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tasks, nil
}

// FindTaskByID returns the owner's task with the given id.
//
// Error handling:
//   - [sql.ErrNoRows] (no task with that id AND owner) → [ErrNoTaskWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *taskRepository) FindTaskByID(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findTaskByID, taskID, ownerID)

	found, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNoTaskWasFound
		}

		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error: task lookup failed")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateTask applies the non-nil fields of update to the matching task and
// returns the updated record.
//
// An update without any field changes degenerates to a plain lookup so the
// caller still gets the current row back, matching the read semantics.
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return r.FindTaskByID(ctx, update.OwnerID, update.ID)
	}

	query, args := r.buildUpdateQuery(update)
	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNoTaskWasFound
		}

		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: task update failed")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes the owner's task with the given id and returns the
// deleted record from the RETURNING clause.
func (r *taskRepository) DeleteTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, deleteTask, taskID, ownerID)

	deleted, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNoTaskWasFound
		}

		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: task delete failed")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// scanTask reads one task row in canonical column order.
func scanTask(row *sql.Row) (models.Task, error) {
	var task models.Task
	err := row.Scan(&task.TaskID, &task.Name, &task.Description, &task.DueDate, &task.OwnerID, &task.CreatedAt)
	return task, err
}
