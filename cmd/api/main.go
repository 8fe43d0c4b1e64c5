package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"shipment-validator/internal/core/cache"
	"shipment-validator/internal/core/config"
	"shipment-validator/internal/core/logger"
	"shipment-validator/internal/core/server"
	"shipment-validator/internal/features/validation/adapters"
	"shipment-validator/internal/features/validation/handler"
	"shipment-validator/internal/features/validation/service"

	"go.uber.org/zap"
)

// @title Shipment Validator API
// @version 1.0
// @description This API validates shipment tracking histories against the carrier status lifecycle.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Int("workers", cfg.Validation.Workers),
	)

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, cfg.Redis.Namespace)
	if err != nil {
		l.Fatal("Failed to create Redis client", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Redis not reachable at startup", zap.Error(err))
	} else {
		l.Info("Redis connection verified")
	}
	cancelPing()

	// Initialize Validation Service & Handler
	reportRepo := adapters.NewRedisReportRepository(redisCache, cfg.Validation.ReportTTL())
	recorder := adapters.NewPrometheusRecorder()
	validationSvc := service.NewValidationService(reportRepo, recorder, cfg.Validation.Workers)
	validationHdl := handler.NewValidationHandler(validationSvc)

	srv := server.New(cfg)

	// Register Routes
	validationHdl.Register(srv.App)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		l.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
