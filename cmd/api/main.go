package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"game-manager/config"
	"game-manager/internal/httpserver"
	"game-manager/pkg/log"
)

// @title       Game Manager API
// @description Accepts VoIP, VR, IoT and geospatial game manager tasks and executes them.
// @version     1
// @host        localhost:3000
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

	logger.Info(ctx, "Starting Game Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Execution history: %d per manager, ttl %s", cfg.History.Size, cfg.History.TTL)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		HistorySize:     cfg.History.Size,
		HistoryTTL:      cfg.History.TTL,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		RateLimitBurst:  cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
