// cmd/assistant/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"edilia-assistant/internal/clients/projects"
	"edilia-assistant/internal/common/config"
	"edilia-assistant/internal/common/database"
	"edilia-assistant/internal/common/logger"
	"edilia-assistant/internal/common/observability"
	"edilia-assistant/internal/engine"
	"edilia-assistant/internal/server"
	"edilia-assistant/internal/session"
	"edilia-assistant/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistant...",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("assistant")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Session store: Redis when configured, in-memory otherwise ---
	sessionTTL := time.Duration(cfg.Engine.SessionTTL) * time.Minute
	var sessions session.Store
	if cfg.Database.Redis.Address != "" {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
		sessions = session.NewRedisStore(redisClient.Client, sessionTTL)
	} else {
		zapLog.Info("Redis not configured, using in-memory session store")
		sessions = session.NewMemoryStore(sessionTTL)
	}

	// --- Creation backends: remote project service or local postgres ---
	var creators engine.Creators
	if cfg.Projects.BaseURL != "" {
		client := projects.NewClient(
			cfg.Projects.BaseURL,
			cfg.Projects.APIKey,
			time.Duration(cfg.Projects.Timeout)*time.Second,
		)
		creators = engine.Creators{
			Feasibility:  client,
			BusinessPlan: client,
			Market:       client,
			Design:       client,
		}
		zapLog.Info("Using remote project service", zap.String("baseURL", cfg.Projects.BaseURL))
	} else {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")

		projectStore := store.NewProjectStore(pg.DB, log)
		creators = engine.Creators{
			Feasibility:  projectStore,
			BusinessPlan: projectStore,
			Market:       projectStore,
			Design:       projectStore,
		}
	}

	eng := engine.New(
		engine.Config{
			ConfidenceThreshold: cfg.Engine.ConfidenceThreshold,
			MaxSuggestions:      cfg.Engine.MaxSuggestions,
		},
		engine.NewMaterializer(creators, log),
		sessions,
		log,
	)

	srv := server.New(cfg.Server, eng, obs, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("Shutting down...", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Assistant stopped")
}
