package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"study-task-tracker/config"
	_ "study-task-tracker/docs" // Swagger docs
	"study-task-tracker/internal/httpserver"
	taskHTTP "study-task-tracker/internal/task/delivery/http"
	fileRepo "study-task-tracker/internal/task/repository/file"
	"study-task-tracker/internal/task/usecase"
	"study-task-tracker/pkg/gcalendar"
	"study-task-tracker/pkg/log"
)

// @title       Study Task Tracker API
// @description Single-user study task tracker with calendar views, reminders, and optional Google Calendar export.
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

	logger.Info(ctx, "Starting Study Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage path: %s", cfg.Storage.Path)

	// 3. Blob store backing the task collection
	taskRepo := fileRepo.New(cfg.Storage.Path)

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Task domain
	taskUC := usecase.New(logger, taskRepo, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)

	if _, err := taskUC.Load(ctx); err != nil {
		logger.Errorf(ctx, "Failed to load task collection: %v", err)
		return
	}

	taskHandler := taskHTTP.New(logger, taskUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TaskHandler:     taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
