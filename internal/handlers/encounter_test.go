package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberveil/adventure-engine/internal/storage"
	"github.com/emberveil/adventure-engine/pkg/game"
)

func newEncounterHandler(t *testing.T) (*EncounterHandler, *storage.EncounterCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := storage.NewEncounterCache(mr.Addr(), testLogger())
	t.Cleanup(func() { _ = cache.Close() })
	return NewEncounterHandler(cache, testLogger()), cache
}

func TestEncounterHandler_ActiveEncounter(t *testing.T) {
	handler, cache := newEncounterHandler(t)

	enemy := game.NewEnemy(game.EnemyDragon)
	enemy.HP = 120
	require.NoError(t, cache.Save(context.Background(), 5, enemy))

	req := httptest.NewRequest(http.MethodGet, "/v1/encounters/5", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp EncounterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Enemy)
	assert.Equal(t, game.EnemyDragon, resp.Enemy.Type)
	assert.Equal(t, 120, resp.Enemy.HP)
}

func TestEncounterHandler_NoEncounter(t *testing.T) {
	handler, _ := newEncounterHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/encounters/5", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp EncounterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Nil(t, resp.Enemy)
}

func TestEncounterHandler_Errors(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "method not allowed",
			method:         http.MethodPost,
			path:           "/v1/encounters/5",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed. Only GET is supported.",
		},
		{
			name:           "missing character ID",
			method:         http.MethodGet,
			path:           "/v1/encounters",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Character ID is required",
		},
		{
			name:           "malformed character ID",
			method:         http.MethodGet,
			path:           "/v1/encounters/abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Character ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newEncounterHandler(t)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var errResp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
			assert.Equal(t, tt.expectedError, errResp.Error)
		})
	}
}
