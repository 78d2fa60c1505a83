package store

import (
	"fmt"
	"strings"

	"github.com/taskkeeper/go-task-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createTask = `INSERT INTO tasks (name, description, due_date, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING task_id, name, description, due_date, user_id, created_at;`

	findTasksByOwner = `SELECT task_id, name, description, due_date, user_id, created_at
    FROM tasks
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	findTaskByID = `SELECT task_id, name, description, due_date, user_id, created_at
    FROM tasks
    WHERE task_id = $1 AND user_id = $2;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1 AND user_id = $2
    RETURNING task_id, name, description, due_date, user_id, created_at;`

	updateTaskBase = `UPDATE tasks
		SET`
	updateTaskWhere = `
		WHERE task_id = $%d AND user_id = $%d
		RETURNING task_id, name, description, due_date, user_id, created_at;`
)

// buildUpdateQuery dynamically builds the partial UPDATE statement for a
// task. Only non-nil fields of update become SET clauses; the WHERE clause
// is always scoped to both the task id and the owner id.
//
// The caller must ensure at least one field is set (see TaskUpdate.Empty).
func (r *taskRepository) buildUpdateQuery(update models.TaskUpdate) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(updateTaskBase)

	args := make([]any, 0, 5)
	setClauses := make([]string, 0, 3)
	argIndex := 1

	if update.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf(" name = $%d", argIndex))
		args = append(args, *update.Name)
		argIndex++
	}

	if update.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf(" description = $%d", argIndex))
		args = append(args, *update.Description)
		argIndex++
	}

	if update.DueDate != nil {
		setClauses = append(setClauses, fmt.Sprintf(" due_date = $%d", argIndex))
		args = append(args, *update.DueDate)
		argIndex++
	}

	queryBuilder.WriteString(strings.Join(setClauses, ","))
	queryBuilder.WriteString(fmt.Sprintf(updateTaskWhere, argIndex, argIndex+1))

	args = append(args, update.ID, update.OwnerID)

	return queryBuilder.String(), args
}
