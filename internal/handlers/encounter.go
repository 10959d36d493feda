package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/emberveil/adventure-engine/internal/storage"
	"github.com/emberveil/adventure-engine/pkg/game"
)

// EncounterHandler exposes the cached active encounter for a character so
// a reconnecting client can restore its combat state.
type EncounterHandler struct {
	cache  *storage.EncounterCache
	logger *slog.Logger
}

func NewEncounterHandler(cache *storage.EncounterCache, logger *slog.Logger) *EncounterHandler {
	return &EncounterHandler{
		cache:  cache,
		logger: logger,
	}
}

// EncounterResponse wraps the cached enemy; Enemy is null when no
// encounter is active.
type EncounterResponse struct {
	Enemy *game.Enemy `json:"enemy"`
}

// ServeHTTP handles GET /v1/encounters/{characterId}.
func (h *EncounterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for encounter endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Only GET is supported.",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	idStr := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/encounters"), "/")
	characterID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || characterID == 0 {
		h.logger.Warn("Invalid character ID for encounter lookup", "id", idStr)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Character ID is required",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	enemy, err := h.cache.Load(r.Context(), characterID)
	if err != nil {
		h.logger.Error("Failed to load encounter", "error", err, "character_id", characterID)
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to load encounter",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(EncounterResponse{Enemy: enemy}); err != nil {
		h.logger.Error("Failed to encode encounter response", "error", err)
	}
}
