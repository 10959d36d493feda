package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberveil/adventure-engine/internal/storage"
	"github.com/emberveil/adventure-engine/pkg/game"
)

func TestCharacterHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "create with class defaults",
			body: map[string]interface{}{
				"name":  "Aria",
				"class": "Ranger",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "create with explicit payload",
			body: game.Character{
				Name:      "Brom",
				Age:       40,
				Class:     game.ClassBarbarian,
				HP:        90,
				Stats:     game.ClassStats(game.ClassBarbarian),
				Inventory: game.StartingInventory(game.ClassBarbarian),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           "nope",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON in request body",
		},
		{
			name: "missing name",
			body: map[string]interface{}{
				"class": "Mage",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "name and a valid class are required",
		},
		{
			name: "unknown class",
			body: map[string]interface{}{
				"name":  "Aria",
				"class": "Necromancer",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "name and a valid class are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMockStorage()
			handler := NewCharacterHandler(store, testLogger())

			var body bytes.Buffer
			if s, ok := tt.body.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.body))
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/characters", &body)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var errResp ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
				return
			}

			var resp CreateCharacterResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Positive(t, resp.ID)
			assert.Equal(t, "Character saved", resp.Message)
		})
	}
}

func TestCharacterHandler_CreateFillsDefaults(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewCharacterHandler(store, testLogger())

	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(map[string]interface{}{
		"name":  "Aria",
		"class": "Ranger",
	}))
	req := httptest.NewRequest(http.MethodPost, "/v1/characters", &body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateCharacterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	c, err := store.GetCharacter(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, c.Age)
	assert.Equal(t, game.MaxHP, c.HP)
	assert.Equal(t, game.ClassStats(game.ClassRanger), c.Stats)
	assert.Equal(t, game.StartingInventory(game.ClassRanger), c.Inventory)
}

func TestCharacterHandler_Read(t *testing.T) {
	store := storage.NewMockStorage()
	id, err := store.CreateCharacter(context.Background(), &game.Character{
		Name:      "Aria",
		Age:       27,
		HP:        100,
		Class:     game.ClassRanger,
		Stats:     game.ClassStats(game.ClassRanger),
		Inventory: game.StartingInventory(game.ClassRanger),
	})
	require.NoError(t, err)
	handler := NewCharacterHandler(store, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/characters/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var c game.Character
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "Aria", c.Name)
	assert.Equal(t, game.ClassSkills(game.ClassRanger), c.Skills)
}

func TestCharacterHandler_ReadErrors(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing ID",
			path:           "/v1/characters",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Character ID is required for GET requests",
		},
		{
			name:           "malformed ID",
			path:           "/v1/characters/abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid character ID format",
		},
		{
			name:           "not found",
			path:           "/v1/characters/99",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Character not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCharacterHandler(storage.NewMockStorage(), testLogger())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var errResp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
			assert.Equal(t, tt.expectedError, errResp.Error)
		})
	}
}

func TestCharacterHandler_Update(t *testing.T) {
	store := storage.NewMockStorage()
	id, err := store.CreateCharacter(context.Background(), &game.Character{
		Name:      "Aria",
		HP:        100,
		Class:     game.ClassRanger,
		Inventory: game.StartingInventory(game.ClassRanger),
	})
	require.NoError(t, err)
	handler := NewCharacterHandler(store, testLogger())

	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(game.Character{
		Name:  "Aria the Swift",
		Age:   28,
		Class: game.ClassRanger,
		HP:    64,
	}))
	req := httptest.NewRequest(http.MethodPut, "/v1/characters/1", &body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	c, err := store.GetCharacter(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Aria the Swift", c.Name)
	assert.Equal(t, 64, c.HP)
}

func TestCharacterHandler_MethodNotAllowed(t *testing.T) {
	handler := NewCharacterHandler(storage.NewMockStorage(), testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/v1/characters/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
