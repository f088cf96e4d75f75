package main

import (
	"context"
	"log"
	"time"

	"consignment-tracker/internal/core/cache"
	"consignment-tracker/internal/core/config"
	"consignment-tracker/internal/core/logger"
	"consignment-tracker/internal/core/server"
	advisoryadapter "consignment-tracker/internal/features/advisories/adapters"
	advisoryhandler "consignment-tracker/internal/features/advisories/handler"
	advisoryservice "consignment-tracker/internal/features/advisories/service"
	trackingadapter "consignment-tracker/internal/features/tracking/adapters"
	trackinghandler "consignment-tracker/internal/features/tracking/handler"
	"consignment-tracker/internal/features/tracking/ports"
	trackingservice "consignment-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Consignment Tracker API
// @version 1.0
// @description This API normalizes courier booking data into canonical tracking timelines.
// @contact.name API Support
// @contact.email support@consignmenttracker.com
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
	)

	// Initialize Redis cache and verify connectivity
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Booking Providers and run Health Check
	customerAdapter := trackingadapter.NewCustomerAPIAdapter(cfg.BookingAPI.URL)
	if err := customerAdapter.HealthCheck(); err != nil {
		l.Fatal("Booking API Health Check Failed", zap.Error(err))
	}
	l.Info("Booking API connection verified")

	corporateAdapter := trackingadapter.NewCorporateAPIAdapter(cfg.BookingAPI.CorporateURL)

	bookingProviders := []ports.BookingProvider{
		customerAdapter,
		corporateAdapter,
	}

	// Initialize Tracking Service & Handler
	summaryRepo := trackingadapter.NewRedisSummaryRepository(redisCache)
	summaryTTL := time.Duration(cfg.Redis.SummaryTTLSeconds) * time.Second
	trackingSvc := trackingservice.NewTrackingService(bookingProviders, summaryRepo, summaryTTL)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Advisory Service & Handler
	advisoryRepo := advisoryadapter.NewRedisAdvisoryRepository(redisCache)
	advisorySvc := advisoryservice.NewAdvisoryService(advisoryRepo)
	advisoryHdl := advisoryhandler.NewAdvisoryHandler(advisorySvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/tracking/:reference", trackingHdl.GetTrackingSummary)
	srv.App.Post("/advisory", advisoryHdl.SetAdvisory)
	srv.App.Get("/advisory", advisoryHdl.GetAdvisory)
	srv.App.Delete("/advisory", advisoryHdl.RemoveAdvisory)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
