package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"event-planning-assistant/config"
	_ "event-planning-assistant/docs" // Swagger docs
	"event-planning-assistant/internal/classifier"
	"event-planning-assistant/internal/httpserver"
	"event-planning-assistant/internal/middleware"
	"event-planning-assistant/internal/suggestion/usecase"
	"event-planning-assistant/pkg/llmprovider"
	"event-planning-assistant/pkg/log"
	"event-planning-assistant/pkg/opencage"
)

// @title       Event Planning Assistant API
// @description Task and vendor suggestions for event planning, backed by text generation and place search.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to load .env file: ", err)
		return
	}

	// 2. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 3. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Event Planning Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 4. Text generation
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers: %v", llm.Providers())

	// 5. Place search
	places, err := opencage.New(opencage.Config{
		APIKey:      cfg.Places.APIKey,
		BaseURL:     cfg.Places.BaseURL,
		CountryCode: cfg.Places.CountryCode,
		Limit:       cfg.Places.Limit,
		Timeout:     cfg.Places.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize place search: ", err)
		return
	}

	// 6. Suggestion domain
	taskClassifier := classifier.New(llm, logger)
	suggestionUC := usecase.New(logger, llm, taskClassifier, places, usecase.Config{
		GenerationTimeout:  cfg.Suggestion.GenerationTimeout,
		PlaceSearchTimeout: cfg.Suggestion.PlaceSearchTimeout,
		MaxProviders:       cfg.Suggestion.MaxProviders,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ShutdownTimeout:   cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:    cfg.HTTPServer.TrustedProxies,
		Middleware:        middleware.New(logger, cfg.CORS, cfg.RateLimit),
		SuggestionUseCase: suggestionUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
