package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/emberveil/adventure-engine/internal/services"
	"github.com/emberveil/adventure-engine/internal/storage"
)

type HealthResponse struct {
	Status     string                 `json:"status"`
	Timestamp  time.Time              `json:"timestamp"`
	Service    string                 `json:"service"`
	Components map[string]interface{} `json:"components"`
}

type HealthHandler struct {
	storage    storage.Storage
	cache      *storage.EncounterCache
	llmService services.TextGenerator
	modelName  string
	logger     *slog.Logger
}

// NewHealthHandler creates a health handler. cache may be nil when no
// encounter cache is configured; it is then omitted from the report.
func NewHealthHandler(storage storage.Storage, cache *storage.EncounterCache, llmService services.TextGenerator, modelName string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage:    storage,
		cache:      cache,
		llmService: llmService,
		modelName:  modelName,
		logger:     logger,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	h.logger.Debug("Health check requested",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	components := make(map[string]interface{})
	overallStatus := "healthy"

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Warn("Database health check failed", "error", err)
		components["database"] = "unhealthy"
		overallStatus = "degraded"
	} else {
		components["database"] = "healthy"
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			h.logger.Warn("Cache health check failed", "error", err)
			components["cache"] = "unhealthy"
			overallStatus = "degraded"
		} else {
			components["cache"] = "healthy"
		}
	}

	if ready, err := h.llmService.IsModelReady(ctx, h.modelName); err != nil || !ready {
		h.logger.Warn("Model health check failed", "model", h.modelName, "error", err)
		components["model"] = "unhealthy"
		overallStatus = "degraded"
	} else {
		components["model"] = "healthy"
	}

	response := HealthResponse{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Service:    "adventure-engine",
		Components: components,
	}

	statusCode := http.StatusOK
	if overallStatus != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Error encoding health response",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
