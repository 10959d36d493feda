// Package spawn recognizes enemy-spawn markers in narration output.
//
// The narrator model is instructed to append ENEMY:GOBLIN, ENEMY:TROLL or
// ENEMY:DRAGON when a new enemy enters the scene. This package extracts at
// most one enemy from a reply and strips every marker occurrence from the
// text shown to the player.
package spawn

import (
	"regexp"
	"strings"

	"github.com/emberveil/adventure-engine/pkg/game"
)

// markerPattern consumes surrounding whitespace so that stripping a marker
// leaves no artifact in the displayed text.
var markerPattern = regexp.MustCompile(`(?i)\s*ENEMY:(GOBLIN|TROLL|DRAGON)\s*`)

// Extract returns the enemy type of the first spawn marker in text.
// Markers beyond the first are ignored; at most one enemy is ever spawned
// from a single narration, however many times the model emits the tag.
func Extract(text string) (game.EnemyType, bool) {
	m := markerPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	switch strings.ToUpper(m[1]) {
	case "GOBLIN":
		return game.EnemyGoblin, true
	case "TROLL":
		return game.EnemyTroll, true
	case "DRAGON":
		return game.EnemyDragon, true
	}
	return "", false
}

// Strip removes every spawn marker occurrence and trims the result. It is
// applied to all narration output, whether or not a spawn was honored.
func Strip(text string) string {
	return strings.TrimSpace(markerPattern.ReplaceAllString(text, " "))
}
