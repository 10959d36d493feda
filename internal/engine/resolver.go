package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/emberveil/adventure-engine/pkg/game"
	"github.com/emberveil/adventure-engine/pkg/intent"
)

// Fixed mechanics constants. The summary strings are part of the narration
// contract: the narrator prompt embeds them verbatim.
const (
	potionHealAmount    = 10
	spellDamage         = 8
	defaultWeaponDamage = 5
	attackDieSize       = 20
	counterDieSize      = 6

	potionSuccessSummary = "You drink a health potion and recover 10 HP."
	potionFailureSummary = "You have no health potions."
	alchemySummary       = "You brew a health potion."
	noEnemyAttackSummary = "No enemy present to attack."
	noEnemySpellSummary  = "No enemy present to cast spell on."
	fallbackNarration    = "The AI could not generate a response."
)

// Outcome is the full result of resolving one turn's mechanics. Character
// and Enemy are updated snapshots; the caller owns persistence.
type Outcome struct {
	Character *game.Character
	Enemy     *game.Enemy
	Summary   string
	Action    string

	// EnemyDefeated is set when a player action drove the enemy to 0 HP
	// this turn. It gates the counter-attack and the spawn scan; deriving
	// it from the summary text would be brittle.
	EnemyDefeated bool

	// CharacterDefeated is set when a counter-attack drove the character
	// to 0 HP.
	CharacterDefeated bool
}

// Resolver applies the deterministic mechanics for a classified intent.
// It mutates only the snapshots it is given.
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a resolver. Pass dice.DefaultRoller outside of tests.
func NewResolver(roller dice.Roller) *Resolver {
	return &Resolver{roller: roller}
}

// Resolve evaluates the intent against the character and the current
// enemy. Intents are handled as a priority chain keyed on the tag name,
// first match wins: health potion, alchemy, attack, magic skill, then any
// other recognized tag (narration-only). The none intent passes the raw
// action through untouched.
func (r *Resolver) Resolve(c *game.Character, in intent.Intent, enemy *game.Enemy, action string) (*Outcome, error) {
	out := &Outcome{
		Character: c,
		Enemy:     enemy,
		Action:    action,
	}
	if in.IsNone() {
		return out, nil
	}

	out.Action = fmt.Sprintf("Player uses %s: %s", in.Name, action)

	switch {
	case in.Name == "HEALTH_POTION":
		r.drinkPotion(out)
	case in.Name == "ALCHEMY":
		r.brewPotion(out)
	case in.Kind == intent.KindAttack:
		if err := r.attack(out); err != nil {
			return nil, err
		}
	case in.Kind == intent.KindMagicSkill:
		if err := r.castSpell(out, in.Name); err != nil {
			return nil, err
		}
	default:
		// Recognized skill or item with no mechanical effect; the
		// rewritten action alone tells the narrator what was used.
	}

	if err := r.counterAttack(out, in); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resolver) drinkPotion(out *Outcome) {
	potion := out.Character.FindItem(game.HealthPotionName)
	if potion == nil || potion.Count() <= 0 {
		out.Summary = potionFailureSummary
		return
	}
	potion.AddQuantity(-1)
	out.Character.Heal(potionHealAmount)
	out.Summary = potionSuccessSummary
}

func (r *Resolver) brewPotion(out *Outcome) {
	if potion := out.Character.FindItem(game.HealthPotionName); potion != nil {
		potion.AddQuantity(1)
	} else {
		out.Character.Inventory = append(out.Character.Inventory, game.NewHealthPotion(1))
	}
	out.Summary = alchemySummary
}

func (r *Resolver) attack(out *Outcome) error {
	if out.Enemy == nil {
		out.Summary = noEnemyAttackSummary
		return nil
	}

	damage := game.BaseAttackDamage(out.Character.Class)
	if weapon := out.Character.EquippedWeapon(); weapon != nil && weapon.Damage > 0 {
		damage += weapon.Damage
	} else {
		damage += defaultWeaponDamage
	}

	roll, err := r.roller.Roll(attackDieSize)
	if err != nil {
		return fmt.Errorf("attack roll: %w", err)
	}

	if roll < out.Enemy.Defence {
		out.Summary = fmt.Sprintf("You attack the %s but miss!", out.Enemy.Type)
		return nil
	}

	out.Enemy.HP -= damage
	out.Summary = fmt.Sprintf("You attack the %s and deal %d damage!", out.Enemy.Type, damage)
	if out.Enemy.Defeated() {
		out.Summary += fmt.Sprintf(" The %s is defeated!", out.Enemy.Type)
		out.EnemyDefeated = true
	}
	return nil
}

func (r *Resolver) castSpell(out *Outcome, spell string) error {
	if out.Enemy == nil {
		out.Summary = noEnemySpellSummary
		return nil
	}

	out.Enemy.HP -= spellDamage
	out.Summary = fmt.Sprintf("You cast %s on the %s and deal %d damage!", spell, out.Enemy.Type, spellDamage)
	if out.Enemy.Defeated() {
		out.Summary += fmt.Sprintf(" The %s is defeated!", out.Enemy.Type)
		out.EnemyDefeated = true
	}
	return nil
}

// counterAttack lets a surviving enemy strike back after an attack or
// spell. A defeated enemy never counter-attacks in the same turn.
func (r *Resolver) counterAttack(out *Outcome, in intent.Intent) error {
	if in.Kind != intent.KindAttack && in.Kind != intent.KindMagicSkill {
		return nil
	}
	if out.Enemy == nil || out.EnemyDefeated {
		return nil
	}

	roll, err := r.roller.Roll(counterDieSize)
	if err != nil {
		return fmt.Errorf("counter-attack roll: %w", err)
	}

	if roll < game.EvasionThreshold(out.Character.Class) {
		out.Summary += fmt.Sprintf(" The %s strikes back but misses!", out.Enemy.Type)
		return nil
	}

	defeated := out.Character.TakeDamage(out.Enemy.Attack)
	out.Summary += fmt.Sprintf(" The %s strikes back for %d damage!", out.Enemy.Type, out.Enemy.Attack)
	if defeated {
		out.Summary += " You have been defeated!"
		out.CharacterDefeated = true
	}
	return nil
}
