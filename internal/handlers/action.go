package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/emberveil/adventure-engine/internal/engine"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionHandler runs a player action through the turn pipeline.
type ActionHandler struct {
	engine *engine.TurnEngine
	logger *slog.Logger
}

func NewActionHandler(engine *engine.TurnEngine, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{
		engine: engine,
		logger: logger,
	}
}

// ServeHTTP handles POST /v1/action.
func (h *ActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for action endpoint",
			"method", r.Method,
			"path", r.URL.Path)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Only POST is supported.",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	var req engine.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in action request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if req.CharacterID == 0 {
		h.logger.Warn("Action request without character ID")
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Character ID is required",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	result, err := h.engine.ProcessTurn(r.Context(), &req)
	if err != nil {
		// Step-level detail is logged for operators; the caller sees one
		// generic failure regardless of which step broke.
		h.logger.Error("Error processing action",
			"error", err,
			"character_id", req.CharacterID)
		if errors.Is(err, engine.ErrCharacterRequired) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		response := ErrorResponse{
			Error: "Failed to process action",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("Failed to encode action response", "error", err)
	}
}
