package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sutharpankaj1/flowq/internal/api"
	"github.com/sutharpankaj1/flowq/internal/broker"
	"github.com/sutharpankaj1/flowq/internal/config"
	"github.com/sutharpankaj1/flowq/internal/storage/memory"

	_ "github.com/sutharpankaj1/flowq/docs/swagger" // Import generated swagger docs
)

// @title FlowQ API
// @version 0.1.0
// @description FlowQ - Open Source Message Broker API
// @termsOfService http://swagger.io/terms/

// @contact.name FlowQ Team
// @contact.url https://github.com/sutharpankaj1/flowq

// @license.name MIT

// @host localhost:3000
// @BasePath /

// @schemes http
func main() {
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	cleanupInterval := flag.Duration("cleanup-interval", 0, "Expired message cleanup interval")
	flag.Parse()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override environment when set
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *cleanupInterval > 0 {
		cfg.Broker.CleanupInterval = *cleanupInterval
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logger
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting FlowQ server",
		"version", api.Version,
		"addr", cfg.Addr(),
		"cleanup_interval", cfg.Broker.CleanupInterval,
		"log_level", cfg.Log.Level,
	)

	// Wire the broker over the in-memory engine
	engine := memory.NewEngine(logger)
	b := broker.New(engine, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background maintenance
	b.StartMaintenance(ctx, cfg.Broker.CleanupInterval)
	defer b.StopMaintenance()

	// Create API router and HTTP server
	router := api.NewRouter(b)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting HTTP server", "address", srv.Addr)
		logger.Info("Swagger UI available", "url", "http://"+srv.Addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down FlowQ server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("FlowQ server stopped")
}
