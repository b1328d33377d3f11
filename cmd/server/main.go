package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatscan/backend/internal/config"
	"chatscan/backend/internal/db"
	"chatscan/backend/internal/handler"
	chatscanhttp "chatscan/backend/internal/http"
	"chatscan/backend/internal/logger"
	"chatscan/backend/internal/metrics"
	"chatscan/backend/internal/ratelimit"
	"chatscan/backend/internal/repository"
	"chatscan/backend/internal/scheduler"
	"chatscan/backend/internal/service"
	"chatscan/backend/internal/service/ai"
	"chatscan/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		logger.Error("init snowflake", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer database.Close()

	limiter, err := ratelimit.New(cfg.RateLimit, cfg.RateWindow)
	if err != nil {
		logger.Error("configure rate limiter", "error", err,
			"limit", cfg.RateLimit, "window", cfg.RateWindow)
		os.Exit(1)
	}

	metrics.Register()

	extractionRepo := repository.NewExtractionRepository(database)
	factory := ai.NewFactory(cfg.AIProvider, cfg.AIModel, cfg.AIBaseURL)
	pace := ai.NewRateLimiter(cfg.AICallsPerMinute)

	extractionService := service.NewExtractionService(factory, pace, extractionRepo)
	resultService := service.NewResultService(extractionRepo)

	e := chatscanhttp.NewRouter(
		handler.NewExtractHandler(extractionService),
		handler.NewResultHandler(resultService),
		handler.NewRateLimitHandler(limiter, time.Now),
		handler.NewHealthHandler(),
		limiter,
		time.Now,
		cfg.MaxUpload,
		cfg.StaticDir,
	)

	sweeper := scheduler.New(limiter, cfg.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	go func() {
		logger.Info("server listening", "addr", cfg.Addr,
			"rate_limit", cfg.RateLimit, "rate_window", cfg.RateWindow.String())
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
