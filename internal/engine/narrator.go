package engine

import (
	"context"
	"log/slog"

	"github.com/emberveil/adventure-engine/internal/services"
	"github.com/emberveil/adventure-engine/pkg/game"
	"github.com/emberveil/adventure-engine/pkg/prompts"
	"github.com/emberveil/adventure-engine/pkg/spawn"
	"github.com/emberveil/adventure-engine/pkg/textfilter"
)

// Narrator turns a resolved turn into scene text and, when the model emits
// a spawn marker, a new enemy.
type Narrator struct {
	generator services.TextGenerator
	filter    *textfilter.ProfanityFilter
	logger    *slog.Logger
}

// NewNarrator creates a narrator. filter may be nil to pass narration
// through unfiltered.
func NewNarrator(generator services.TextGenerator, filter *textfilter.ProfanityFilter, logger *slog.Logger) *Narrator {
	return &Narrator{generator: generator, filter: filter, logger: logger}
}

// Narrate builds the narration prompt from the recent log, the current
// enemy, the rewritten action and the mechanics summary, and cleans the
// reply. Generation failures degrade to a fixed fallback line rather than
// failing the turn: the mechanics already happened and must still be
// persisted and acknowledged.
//
// Spawn extraction runs only when no enemy is present and none was
// defeated this turn. The marker pattern is stripped from the returned
// scene text unconditionally, so a marker that failed the gate never
// leaks to the player.
func (n *Narrator) Narrate(ctx context.Context, gameLog []string, enemy *game.Enemy, action, summary string, enemyDefeated bool) (string, *game.Enemy) {
	prompt := prompts.NarratorPrompt(gameLog, enemy, action, summary)

	reply, err := n.generator.Generate(ctx, prompt)
	if err != nil || reply == "" {
		n.logger.Error("Narration failed, using fallback", "error", err)
		reply = fallbackNarration
	}

	var spawned *game.Enemy
	if enemy == nil && !enemyDefeated {
		if enemyType, ok := spawn.Extract(reply); ok {
			spawned = game.NewEnemy(enemyType)
			n.logger.Debug("Enemy spawned from narration", "type", enemyType)
		}
	}

	scene := spawn.Strip(reply)
	if n.filter != nil {
		scene = n.filter.FilterText(scene)
	}
	return scene, spawned
}
