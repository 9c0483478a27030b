package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"item-store-api/config"
	_ "item-store-api/docs" // Swagger docs
	"item-store-api/internal/httpserver"
	"item-store-api/pkg/cosmos"
	"item-store-api/pkg/log"
)

// @title       Item Store API
// @description CRUD service for catalogue items stored in Azure Cosmos DB, partitioned by category.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Item Store API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Cosmos endpoint: %s (database=%s, container=%s)", cfg.Cosmos.Endpoint, cfg.Cosmos.Database, cfg.Cosmos.Container)

	// 3. Document store
	container, err := cosmos.New(ctx, cosmos.Config{
		Endpoint:           cfg.Cosmos.Endpoint,
		Key:                cfg.Cosmos.Key,
		Database:           cfg.Cosmos.Database,
		Container:          cfg.Cosmos.Container,
		PartitionKeyPath:   cfg.Cosmos.PartitionKeyPath,
		Throughput:         cfg.Cosmos.Throughput,
		InsecureSkipVerify: cfg.Cosmos.InsecureSkipVerify,
		CreateIfNotExists:  cfg.Cosmos.CreateIfNotExists,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Cosmos DB: ", err)
		os.Exit(1)
	}
	if cfg.Cosmos.InsecureSkipVerify {
		logger.Warn(ctx, "Cosmos TLS verification disabled, use only with the local emulator")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		Container:       container,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
