package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/cache"
	config "taskflow.com/taskflow/internal/configs"
	httpapi "taskflow.com/taskflow/internal/http"
	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		var taskRepo repository.TaskRepository
		switch cfg.StorageDriver {
		case config.StorageSQLite:
			taskRepo = repository.NewGormTaskRepository(config.NewDatabaseClient(cfg.DatabaseDSN))
		case config.StorageMemory:
			taskRepo = repository.NewMemoryTaskRepository()
		}

		if cfg.CacheEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()

			taskCache := cache.NewRedisTaskCache(
				redisClient,
				cfg.CacheKeyPrefix,
				time.Duration(cfg.CacheTTLSeconds)*time.Second,
			)
			taskRepo = cache.NewCachingRepository(taskRepo, taskCache)
		}

		taskService := services.NewTaskService(taskRepo)

		e := echo.New()
		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
