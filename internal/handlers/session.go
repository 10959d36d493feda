package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/emberveil/adventure-engine/internal/storage"
)

// SessionHandler saves and restores game-session snapshots.
type SessionHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewSessionHandler(storage storage.Storage, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		storage: storage,
		logger:  logger,
	}
}

// SaveSessionResponse is returned from a successful save.
type SaveSessionResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ServeHTTP handles HTTP requests for game sessions.
// Routes:
// POST /v1/sessions     - Save a session snapshot
// GET /v1/sessions/{id} - Read a session snapshot by ID
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.TrimPrefix(r.URL.Path, "/v1/sessions")
	var sessionID int64
	if idStr := strings.Trim(path, "/"); idStr != "" {
		var err error
		sessionID, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			h.logger.Warn("Invalid session ID", "id", idStr, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Invalid session ID format",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		h.handleSave(w, r)

	case http.MethodGet:
		if sessionID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Session ID is required for GET requests",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleRead(w, r, sessionID)

	default:
		h.logger.Warn("Method not allowed for session endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Supported methods: POST, GET",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
	}
}

func (h *SessionHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	var sess storage.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		h.logger.Warn("Invalid JSON in session request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if sess.CharacterID == 0 {
		h.logger.Warn("Session save without character ID")
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Character ID is required",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	id, err := h.storage.SaveSession(r.Context(), &sess)
	if err != nil {
		h.logger.Error("Failed to save game session", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to save game session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	h.logger.Debug("Game session saved", "id", id, "character_id", sess.CharacterID)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SaveSessionResponse{ID: id, Message: "Game session saved"}); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id int64) {
	sess, err := h.storage.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.logger.Warn("Session not found", "id", id)
			w.WriteHeader(http.StatusNotFound)
			response := ErrorResponse{
				Error: "Session not found",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.logger.Error("Failed to fetch game session", "error", err, "id", id)
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to fetch game session",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sess); err != nil {
		h.logger.Error("Failed to encode session response", "error", err)
	}
}
