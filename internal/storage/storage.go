package storage

import (
	"context"
	"errors"

	"github.com/emberveil/adventure-engine/pkg/game"
)

// ErrNotFound is returned when a keyed read matches no record.
var ErrNotFound = errors.New("not found")

// Session is a saved game-session snapshot: the full narrated log and the
// current scene, persisted opaquely rather than incrementally.
type Session struct {
	ID           int64    `json:"id,omitempty"`
	CharacterID  int64    `json:"characterId"`
	GameLog      []string `json:"gameLog"`
	CurrentScene string   `json:"currentScene"`
}

// Storage is the durable character and session store.
type Storage interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
	Close() error

	// CreateCharacter inserts a full character payload and returns the
	// generated id.
	CreateCharacter(ctx context.Context, c *game.Character) (int64, error)

	// GetCharacter returns the full character: stats joined, skills derived
	// from class, inventory deserialized in stored order. ErrNotFound when
	// the id matches no row.
	GetCharacter(ctx context.Context, id int64) (*game.Character, error)

	// UpdateCharacter replaces the editable character fields.
	UpdateCharacter(ctx context.Context, c *game.Character) error

	// UpdateCharacterState writes the per-turn mutable state (hp and
	// inventory). This is the single durable write of a turn.
	UpdateCharacterState(ctx context.Context, id int64, hp int, inventory []game.InventoryItem) error

	// SaveSession inserts a session snapshot and returns the generated id.
	SaveSession(ctx context.Context, s *Session) (int64, error)

	// GetSession returns a saved session snapshot. ErrNotFound when the id
	// matches no row.
	GetSession(ctx context.Context, id int64) (*Session, error)
}
