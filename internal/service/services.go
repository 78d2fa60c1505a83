package service

import (
	"github.com/taskkeeper/go-task-keeper/internal/cache"
	"github.com/taskkeeper/go-task-keeper/internal/config"
	"github.com/taskkeeper/go-task-keeper/internal/logger"
	"github.com/taskkeeper/go-task-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(storages *store.Storages, taskCache cache.TaskCache, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		TaskService: NewTaskService(storages.TaskRepository, taskCache, cfg.Storage.Cache, logger),
	}
}
