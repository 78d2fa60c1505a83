package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/taskkeeper/go-task-keeper/internal/cache"
	"github.com/taskkeeper/go-task-keeper/internal/config"
	httphandler "github.com/taskkeeper/go-task-keeper/internal/handler/http"
	"github.com/taskkeeper/go-task-keeper/internal/logger"
	"github.com/taskkeeper/go-task-keeper/internal/server"
	"github.com/taskkeeper/go-task-keeper/internal/service"
	"github.com/taskkeeper/go-task-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine, the environment may be set by the runner
	_ = godotenv.Load()

	log := logger.NewLogger("task-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing database connection")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	// The cache is an accelerator, not a dependency: if it cannot be
	// reached at startup the service runs store-only and every read goes
	// to the database.
	var taskCache cache.TaskCache
	if rdb, cacheErr := cache.Connect(ctx, cfg.Storage.Cache, log); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("cache is unavailable, continuing without it")
		taskCache = cache.NewNoop()
	} else {
		taskCache = cache.NewRedisCache(rdb, log)
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, taskCache, cfg, log)
	router := httphandler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
