package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/emberveil/adventure-engine/internal/config"
	"github.com/emberveil/adventure-engine/internal/engine"
	"github.com/emberveil/adventure-engine/internal/handlers"
	"github.com/emberveil/adventure-engine/internal/logger"
	"github.com/emberveil/adventure-engine/internal/middleware"
	"github.com/emberveil/adventure-engine/internal/services"
	"github.com/emberveil/adventure-engine/internal/storage"
	"github.com/emberveil/adventure-engine/pkg/textfilter"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

// newTextGenerator builds the configured LLM provider. The anthropic
// provider refuses to start without an API key.
func newTextGenerator(cfg *config.Config, log *slog.Logger) (services.TextGenerator, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("Anthropic API key is required when using anthropic provider")
		}
		log.Info("Using Anthropic LLM provider")
		return services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, log), nil
	case "ollama":
		log.Info("Using Ollama LLM provider", "url", cfg.OllamaURL)
		return services.NewOllamaService(cfg.OllamaURL, cfg.ModelName, log), nil
	default:
		return nil, fmt.Errorf("invalid LLM provider %q, supported: anthropic, ollama", cfg.LLMProvider)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Setup(cfg)

	log.Info("Starting Adventure Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName)

	llmService, err := newTextGenerator(cfg, log)
	if err != nil {
		return err
	}

	store, err := storage.OpenSQLite(cfg.DatabasePath, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	log.Info("Database opened", "path", cfg.DatabasePath)

	var encounters *storage.EncounterCache
	if cfg.RedisURL != "" {
		encounters = storage.NewEncounterCache(cfg.RedisURL, log)
		cacheCtx, cacheCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := encounters.Ping(cacheCtx); err != nil {
			log.Warn("Encounter cache unreachable, continuing without it", "error", err)
			encounters = nil
		} else {
			log.Info("Encounter cache connection established")
		}
		cacheCancel()
	}

	// Pull the model on startup when the provider supports it.
	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer initCancel()
	if err := llmService.InitModel(initCtx, cfg.ModelName); err != nil {
		return fmt.Errorf("failed to initialize LLM model %q: %w", cfg.ModelName, err)
	}

	var filter *textfilter.ProfanityFilter
	if cfg.FamilyFriendly {
		filter = textfilter.NewProfanityFilter()
		log.Info("Profanity filtering enabled")
	}

	turnEngine := engine.NewTurnEngine(store,
		engine.NewClassifier(llmService, log),
		engine.NewResolver(dice.DefaultRoller),
		engine.NewNarrator(llmService, filter, log),
		encounters,
		log)

	mux := http.NewServeMux()

	mux.Handle("/health", handlers.NewHealthHandler(store, encounters, llmService, cfg.ModelName, log))
	mux.Handle("/v1/action", handlers.NewActionHandler(turnEngine, log))

	characterHandler := handlers.NewCharacterHandler(store, log)
	mux.Handle("/v1/characters", characterHandler)
	mux.Handle("/v1/characters/", characterHandler)

	sessionHandler := handlers.NewSessionHandler(store, log)
	mux.Handle("/v1/sessions", sessionHandler)
	mux.Handle("/v1/sessions/", sessionHandler)

	if encounters != nil {
		mux.Handle("/v1/encounters/", handlers.NewEncounterHandler(encounters, log))
	}

	handler := middleware.Logger(log, mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing database", "error", err)
	}
	if encounters != nil {
		if err := encounters.Close(); err != nil {
			log.Error("Error closing encounter cache", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
