package store

import "github.com/taskkeeper/go-task-keeper/internal/logger"

// Storages bundles every repository the service layer depends on, all
// sharing one database handle.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
