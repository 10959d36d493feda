package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emberveil/adventure-engine/internal/storage"
	"github.com/emberveil/adventure-engine/pkg/game"
)

// ErrCharacterRequired is returned when a turn arrives without a
// character id. The request is rejected before any store access.
var ErrCharacterRequired = errors.New("character ID is required")

// TurnRequest is one player action against a character, together with the
// client-held encounter state. The request is authoritative for the
// current enemy; the server does not track encounters across turns.
// Enemies carries zero or one entry; anything past the first is ignored.
type TurnRequest struct {
	Action      string        `json:"action"`
	CharacterID int64         `json:"characterId"`
	GameLog     []string      `json:"gameLog,omitempty"`
	Enemies     []*game.Enemy `json:"enemies,omitempty"`
}

// currentEnemy returns the single tracked enemy, or nil.
func (r *TurnRequest) currentEnemy() *game.Enemy {
	if len(r.Enemies) == 0 {
		return nil
	}
	return r.Enemies[0]
}

// TurnResult is the outcome of a completed turn.
type TurnResult struct {
	Scene     string               `json:"scene"`
	GameLog   []string             `json:"gameLog"`
	HP        int                  `json:"updatedHp"`
	Inventory []game.InventoryItem `json:"updatedInventory"`
	Enemy     *game.Enemy          `json:"enemy"`
}

// TurnEngine orchestrates a full turn: classify, resolve, narrate,
// persist. Each turn performs exactly one durable write, after narration,
// so a failure at any step leaves the stored character untouched.
type TurnEngine struct {
	store      storage.Storage
	classifier *Classifier
	resolver   *Resolver
	narrator   *Narrator
	encounters *storage.EncounterCache
	locks      *keyedMutex
	logger     *slog.Logger
}

// NewTurnEngine wires the pipeline. encounters may be nil when no Redis
// cache is configured.
func NewTurnEngine(store storage.Storage, classifier *Classifier, resolver *Resolver, narrator *Narrator, encounters *storage.EncounterCache, logger *slog.Logger) *TurnEngine {
	return &TurnEngine{
		store:      store,
		classifier: classifier,
		resolver:   resolver,
		narrator:   narrator,
		encounters: encounters,
		locks:      newKeyedMutex(),
		logger:     logger,
	}
}

// ProcessTurn runs one action through the pipeline. Turns for the same
// character are serialized; turns for different characters proceed
// concurrently.
func (e *TurnEngine) ProcessTurn(ctx context.Context, req *TurnRequest) (*TurnResult, error) {
	if req.CharacterID == 0 {
		return nil, ErrCharacterRequired
	}

	e.locks.Lock(req.CharacterID)
	defer e.locks.Unlock(req.CharacterID)

	character, err := e.store.GetCharacter(ctx, req.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("look up character %d: %w", req.CharacterID, err)
	}

	in, err := e.classifier.Classify(ctx, req.Action, character.Class)
	if err != nil {
		return nil, err
	}

	outcome, err := e.resolver.Resolve(character, in, req.currentEnemy(), req.Action)
	if err != nil {
		return nil, fmt.Errorf("resolve turn: %w", err)
	}

	// Narration never blocks the turn; failures fall back to a fixed
	// line inside the narrator.
	scene, spawned := e.narrator.Narrate(ctx, req.GameLog, outcome.Enemy, outcome.Action, outcome.Summary, outcome.EnemyDefeated)

	// The single durable write of the turn. Written unconditionally,
	// fallback narration included, because the mechanics have already
	// been applied to the snapshot.
	if err := e.store.UpdateCharacterState(ctx, req.CharacterID, outcome.Character.HP, outcome.Character.Inventory); err != nil {
		return nil, fmt.Errorf("persist character state: %w", err)
	}

	result := &TurnResult{
		Scene:     scene,
		GameLog:   logAppend(outcome.Summary, scene),
		HP:        outcome.Character.HP,
		Inventory: outcome.Character.Inventory,
		Enemy:     e.resultEnemy(outcome, spawned),
	}

	e.mirrorEncounter(ctx, req.CharacterID, result.Enemy, outcome.EnemyDefeated)

	e.logger.Info("Turn completed",
		"character_id", req.CharacterID,
		"tag", in.Tag(),
		"enemy_defeated", outcome.EnemyDefeated,
		"hp", result.HP)
	return result, nil
}

// resultEnemy picks the enemy returned to the caller: a defeated enemy is
// omitted, a freshly spawned one takes its place, and otherwise the
// (possibly damaged) current enemy passes through.
func (e *TurnEngine) resultEnemy(outcome *Outcome, spawned *game.Enemy) *game.Enemy {
	if spawned != nil {
		return spawned
	}
	if outcome.Enemy != nil && outcome.Enemy.Defeated() {
		return nil
	}
	return outcome.Enemy
}

// logAppend builds the turn's game-log append: one entry combining the
// mechanics summary, when present, with the scene text.
func logAppend(summary, scene string) []string {
	if summary == "" {
		return []string{scene}
	}
	return []string{summary + " " + scene}
}

// mirrorEncounter reflects the turn's enemy state into the encounter
// cache. Cache failures are logged and swallowed; the request remains
// authoritative for the encounter.
func (e *TurnEngine) mirrorEncounter(ctx context.Context, characterID int64, enemy *game.Enemy, defeated bool) {
	if e.encounters == nil {
		return
	}
	var err error
	if enemy != nil {
		err = e.encounters.Save(ctx, characterID, enemy)
	} else if defeated {
		err = e.encounters.Clear(ctx, characterID)
	}
	if err != nil {
		e.logger.Warn("Failed to mirror encounter", "character_id", characterID, "error", err)
	}
}
