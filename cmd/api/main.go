package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/naza-official/bart-one-shot-classification-service/internal/adapter/client"
	"github.com/naza-official/bart-one-shot-classification-service/internal/adapter/http/router"
	"github.com/naza-official/bart-one-shot-classification-service/internal/adapter/repository/memory"
	"github.com/naza-official/bart-one-shot-classification-service/internal/infrastructure/cache"
	"github.com/naza-official/bart-one-shot-classification-service/internal/infrastructure/config"
	"github.com/naza-official/bart-one-shot-classification-service/internal/infrastructure/logger"
	"github.com/naza-official/bart-one-shot-classification-service/internal/infrastructure/metrics"
	"github.com/naza-official/bart-one-shot-classification-service/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Model inference client
	mlClient := client.NewMLClient(cfg.ML.URL, cfg.ML.Timeout)
	classifier := client.NewMLClassifier(mlClient)

	// Initialize Redis (optional, continue without it)
	var resultCache usecase.ResultCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		} else {
			log.Info("Connected to Redis")
			resultCache = cache.NewResultCache(redisClient, cfg.Cache.TTL)
			defer func() { _ = redisClient.Close() }()
		}
	}

	// Job store and metrics
	store := memory.NewJobStore(log)
	m := metrics.New(prometheus.DefaultRegisterer)
	metrics.RegisterJobGauges(prometheus.DefaultRegisterer, func() (int, int) {
		stats := store.Stats()
		return stats.ActiveCount, stats.TotalCount
	})

	// Batch scheduler and expiry sweeper
	scheduler := usecase.NewBatchScheduler(store, classifier, cfg.Jobs.Workers, m, log)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	sweeper := usecase.NewExpirySweeper(store, cfg.Jobs.SweepInterval, cfg.Jobs.Retention, log)
	sweeper.Start(sweepCtx)

	classificationUC := usecase.NewClassificationUsecase(
		store, scheduler, classifier, resultCache, cfg.Jobs.MaxBatchSize, log)

	// Setup router
	r := router.Setup(classificationUC, mlClient, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	stopSweeper()

	log.Info("Server exited")
	return nil
}
