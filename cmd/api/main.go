package main

import (
	"context"
	"fmt"

	"travel-planner/config"
	_ "travel-planner/docs" // Swagger docs
	"travel-planner/internal/httpserver"
	"travel-planner/internal/packing"
	"travel-planner/internal/session"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
)

// @title       Travel Planner API
// @description Itinerary generation and packing checklists backed by Gemini or Qwen.
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Travel Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, llmprovider.ParseManagerConfig(&cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 4. Packing sessions
	sessions := session.New(logger, cfg.Session.TTL, cfg.Session.MaxSessions)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.RateLimit,
		LLM:         manager,
		Sessions:    sessions,
		IDs:         packing.NewULIDSource(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
