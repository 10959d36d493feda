package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/emberveil/adventure-engine/internal/storage"
	"github.com/emberveil/adventure-engine/pkg/game"
)

// CharacterHandler manages character records.
type CharacterHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewCharacterHandler(storage storage.Storage, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{
		storage: storage,
		logger:  logger,
	}
}

// CreateCharacterResponse is returned from a successful create.
type CreateCharacterResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ServeHTTP handles HTTP requests for character operations.
// Routes:
// POST /v1/characters     - Create a character
// GET /v1/characters/{id} - Read a character by ID
// PUT /v1/characters/{id} - Update a character
func (h *CharacterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.TrimPrefix(r.URL.Path, "/v1/characters")
	var characterID int64
	if idStr := strings.Trim(path, "/"); idStr != "" {
		var err error
		characterID, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			h.logger.Warn("Invalid character ID", "id", idStr, "error", err)
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Invalid character ID format",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)

	case http.MethodGet:
		if characterID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Character ID is required for GET requests",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleRead(w, r, characterID)

	case http.MethodPut:
		if characterID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			response := ErrorResponse{
				Error: "Character ID is required for PUT requests",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.handleUpdate(w, r, characterID)

	default:
		h.logger.Warn("Method not allowed for character endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		response := ErrorResponse{
			Error: "Method not allowed. Supported methods: POST, GET, PUT",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
	}
}

func (h *CharacterHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var c game.Character
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.logger.Warn("Invalid JSON in character request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	if c.Name == "" || !c.Class.Valid() {
		h.logger.Warn("Invalid character payload", "name", c.Name, "class", c.Class)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "name and a valid class are required",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	// Fill class defaults for anything the caller left out.
	if c.Age == 0 {
		c.Age = 25
	}
	if c.HP == 0 {
		c.HP = game.MaxHP
	}
	if c.Stats == (game.Stats{}) {
		c.Stats = game.ClassStats(c.Class)
	}
	if c.Inventory == nil {
		c.Inventory = game.StartingInventory(c.Class)
	}

	id, err := h.storage.CreateCharacter(r.Context(), &c)
	if err != nil {
		h.logger.Error("Failed to save character", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to save character",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	h.logger.Debug("Character created", "id", id, "class", c.Class)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(CreateCharacterResponse{ID: id, Message: "Character saved"}); err != nil {
		h.logger.Error("Failed to encode character response", "error", err)
	}
}

func (h *CharacterHandler) handleRead(w http.ResponseWriter, r *http.Request, id int64) {
	c, err := h.storage.GetCharacter(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.logger.Warn("Character not found", "id", id)
			w.WriteHeader(http.StatusNotFound)
			response := ErrorResponse{
				Error: "Character not found",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.logger.Error("Failed to fetch character", "error", err, "id", id)
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to fetch character",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(c); err != nil {
		h.logger.Error("Failed to encode character response", "error", err)
	}
}

func (h *CharacterHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	var c game.Character
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.logger.Warn("Invalid JSON in character request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		response := ErrorResponse{
			Error: "Invalid JSON in request body",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	c.ID = id
	if c.HP == 0 {
		c.HP = game.MaxHP
	}
	c.HP = game.ClampHP(c.HP)

	if err := h.storage.UpdateCharacter(r.Context(), &c); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.logger.Warn("Character not found for update", "id", id)
			w.WriteHeader(http.StatusNotFound)
			response := ErrorResponse{
				Error: "Character not found",
			}
			if err := json.NewEncoder(w).Encode(response); err != nil {
				h.logger.Error("Failed to encode error response", "error", err)
			}
			return
		}
		h.logger.Error("Failed to update character", "error", err, "id", id)
		w.WriteHeader(http.StatusInternalServerError)
		response := ErrorResponse{
			Error: "Failed to update character",
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Character updated"}); err != nil {
		h.logger.Error("Failed to encode character response", "error", err)
	}
}
