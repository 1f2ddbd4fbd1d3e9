package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pro-todo-backend/config"
	_ "pro-todo-backend/docs" // Swagger docs
	"pro-todo-backend/internal/httpserver"
	"pro-todo-backend/internal/sync"
	taskRepo "pro-todo-backend/internal/task/repository"
	taskFirestore "pro-todo-backend/internal/task/repository/firestore"
	taskMemory "pro-todo-backend/internal/task/repository/memory"
	userRepo "pro-todo-backend/internal/user/repository"
	userFirestore "pro-todo-backend/internal/user/repository/firestore"
	userMemory "pro-todo-backend/internal/user/repository/memory"
	"pro-todo-backend/pkg/log"
)

// @title       Pro To-Do API
// @description Personal task management: quick-input capture, saved queries, recurrence, live sync and calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pro To-Do...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone for date resolution
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		location = time.UTC
	}

	// 4. Stores: Firestore when configured, in-memory otherwise
	var (
		tasks taskRepo.Repository
		users userRepo.Repository
	)
	if cfg.Firestore.ProjectID != "" {
		client, fsErr := taskFirestore.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsPath)
		if fsErr != nil {
			logger.Error(ctx, "Failed to connect to Firestore: ", fsErr)
			return
		}
		defer client.Close()

		tasks = taskFirestore.New(client, logger)
		users = userFirestore.New(client, logger)
		logger.Infof(ctx, "Firestore store initialized (project %s)", cfg.Firestore.ProjectID)
	} else {
		tasks = taskMemory.New()
		users = userMemory.New()
		logger.Warn(ctx, "FIRESTORE_PROJECT_ID not set, using in-memory store")
	}

	// 5. Live-update hub
	hub := sync.NewHub(logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AppConfig:      cfg,
		TaskRepository: tasks,
		UserRepository: users,
		Hub:            hub,
		Location:       location,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
