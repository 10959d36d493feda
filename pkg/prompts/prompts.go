// Package prompts builds the two prompts sent to the text-completion
// collaborator each turn: the per-class intent classification prompt and
// the narration prompt.
package prompts

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/emberveil/adventure-engine/pkg/game"
)

// Per-class classifier instruction templates. Each template enumerates
// every legal tag for the class; the raw player action is appended. These
// strings are part of the contract with the model and must not be reworded
// casually.
const (
	mageClassifierPrompt      = "Analyze the user action and return only the appropriate tags only from: MSKILL:FIREBALL, MSKILL:MAGIC_MISSILE, MSKILL:TELEPORT, MSKILL:MAGIC_SHIELD, OSKILL:ALCHEMY, OSKILL:APPRAISAL, OSKILL:SECRET_KNOWLEDGE, ITEM:HEALTH_POTION, ITEM:STAFF, ITEM:SPELLBOOK, ATTACK. If none match, return NONE. User action: "
	clericClassifierPrompt    = "Analyze the user action and return only the appropriate tags only from: MSKILL:HEAL, MSKILL:BLESS, MSKILL:PROTECTION, MSKILL:TURN_UNDEAD, OSKILL:MEDICINE, OSKILL:DIPLOMACY, ITEM:HEALTH_POTION, ITEM:HOLY_SYMBOL, ITEM:MACE, ITEM:HEALING_KIT, ATTACK. If none match, return NONE. User action: "
	barbarianClassifierPrompt = "Analyze the user action and return only the appropriate tags only from: MSKILL:BERSERK, MSKILL:BATTLE_CRY, OSKILL:ATHLETICS, OSKILL:SURVIVAL, OSKILL:INTIMIDATION, ITEM:RATIONS, ITEM:GREAT_AXE, ITEM:TROPHY_NECKLACE, ATTACK. If none match, return NONE. User action: "
	rangerClassifierPrompt    = "Analyze the user action and return only the appropriate tags only from: MSKILL:ANIMAL_COMPANION, MSKILL:NATURES_BLESSING, OSKILL:ARCHERY, OSKILL:STEALTH, OSKILL:HERBALISM, OSKILL:TRACKING, OSKILL:SURVIVAL, ITEM:ARROWS, ITEM:CLOAK, ITEM:LONGBOW, ITEM:HERBS, ATTACK. If none match, return NONE. User action: "
)

// NarratorFraming is the fixed instruction block for the narration prompt.
// The ENEMY tag wording matches the spawn marker scanner exactly.
const NarratorFraming = "You are a narrator for a fantasy RPG game. Based on given user prompts and information about the game state, generate a short yet engaging narrative description. If a new enemy is present or the character is approached by a new enemy, add either ENEMY:GOBLIN, ENEMY:TROLL, or ENEMY:DRAGON tag at the end of your response in this exact format.\n\nGame State: "

// ClassifierPrompt returns the full classification prompt for an action.
// Unknown classes fall back to the Mage template, mirroring catalog
// behavior for unrecognized classes.
func ClassifierPrompt(class game.Class, action string) string {
	var tmpl string
	switch class {
	case game.ClassCleric:
		tmpl = clericClassifierPrompt
	case game.ClassBarbarian:
		tmpl = barbarianClassifierPrompt
	case game.ClassRanger:
		tmpl = rangerClassifierPrompt
	default:
		tmpl = mageClassifierPrompt
	}
	return tmpl + action
}

// NarratorPrompt assembles the narration prompt from the recent game log,
// the current enemy (or none), the possibly rewritten action text, and the
// mechanics summary. The summary is appended only when non-empty so that
// tagless turns read as pure free-form narration requests.
func NarratorPrompt(gameLog []string, enemy *game.Enemy, action, mechanicsSummary string) string {
	var sb strings.Builder
	sb.WriteString(NarratorFraming)

	logJSON, err := json.Marshal(gameLog)
	if err != nil || gameLog == nil {
		logJSON = []byte("[]")
	}
	sb.WriteString("Game Log: ")
	sb.Write(logJSON)

	sb.WriteString("\nCurrent Enemy: ")
	if enemy != nil {
		sb.WriteString(string(enemy.Type))
		sb.WriteString(" (")
		sb.WriteString(strconv.Itoa(enemy.HP))
		sb.WriteString(" HP)")
	} else {
		sb.WriteString("None")
	}

	sb.WriteString("\nUser Action: ")
	sb.WriteString(action)

	if mechanicsSummary != "" {
		sb.WriteString("\n\n")
		sb.WriteString(mechanicsSummary)
	}
	return sb.String()
}
