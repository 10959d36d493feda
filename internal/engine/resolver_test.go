package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberveil/adventure-engine/pkg/game"
	"github.com/emberveil/adventure-engine/pkg/intent"
)

// scriptedRoller returns a fixed sequence of rolls.
type scriptedRoller struct {
	rolls []int
	next  int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	if r.next >= len(r.rolls) {
		return 0, fmt.Errorf("no roll scripted for call %d", r.next+1)
	}
	v := r.rolls[r.next]
	r.next++
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func newCharacter(class game.Class) *game.Character {
	return &game.Character{
		ID:        1,
		Name:      "Tester",
		HP:        100,
		Class:     class,
		Stats:     game.ClassStats(class),
		Inventory: game.StartingInventory(class),
	}
}

func TestResolve_NoneIntentPassesActionThrough(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassMage)

	out, err := r.Resolve(c, intent.None, nil, "I look around the room")
	require.NoError(t, err)
	assert.Equal(t, "I look around the room", out.Action)
	assert.Empty(t, out.Summary)
	assert.False(t, out.EnemyDefeated)
}

func TestResolve_DrinkPotion(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassMage)
	c.HP = 50

	potion := c.FindItem(game.HealthPotionName)
	require.NotNil(t, potion)
	require.Equal(t, 2, potion.Count())

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindItem, Name: "HEALTH_POTION"}, nil, "I drink a potion")
	require.NoError(t, err)

	assert.Equal(t, 60, c.HP)
	assert.Equal(t, 1, c.FindItem(game.HealthPotionName).Count())
	assert.Equal(t, "You drink a health potion and recover 10 HP.", out.Summary)
	assert.Equal(t, "Player uses HEALTH_POTION: I drink a potion", out.Action)
}

func TestResolve_DrinkPotionCapsAtMaxHP(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassMage)
	c.HP = 95

	_, err := r.Resolve(c, intent.Intent{Kind: intent.KindItem, Name: "HEALTH_POTION"}, nil, "potion")
	require.NoError(t, err)
	assert.Equal(t, game.MaxHP, c.HP)
}

func TestResolve_DrinkPotionEmpty(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassMage)
	c.HP = 50
	c.FindItem(game.HealthPotionName).AddQuantity(-2)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindItem, Name: "HEALTH_POTION"}, nil, "potion")
	require.NoError(t, err)

	assert.Equal(t, 50, c.HP)
	assert.Equal(t, 0, c.FindItem(game.HealthPotionName).Count())
	assert.Equal(t, "You have no health potions.", out.Summary)
}

func TestResolve_DrinkPotionNoneInInventory(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassBarbarian) // no potion in starting kit
	c.HP = 50

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindItem, Name: "HEALTH_POTION"}, nil, "potion")
	require.NoError(t, err)
	assert.Equal(t, 50, c.HP)
	assert.Equal(t, "You have no health potions.", out.Summary)
}

func TestResolve_AlchemyIncrementsExistingPotion(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassMage)
	before := len(c.Inventory)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindOtherSkill, Name: "ALCHEMY"}, nil, "I brew a potion")
	require.NoError(t, err)

	assert.Equal(t, 3, c.FindItem(game.HealthPotionName).Count())
	assert.Len(t, c.Inventory, before)
	assert.Equal(t, "You brew a health potion.", out.Summary)
}

func TestResolve_AlchemyAppendsNewPotionEntry(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassBarbarian)
	before := len(c.Inventory)

	_, err := r.Resolve(c, intent.Intent{Kind: intent.KindOtherSkill, Name: "ALCHEMY"}, nil, "brew")
	require.NoError(t, err)

	assert.Len(t, c.Inventory, before+1)
	potion := c.FindItem(game.HealthPotionName)
	require.NotNil(t, potion)
	assert.Equal(t, 1, potion.Count())
	assert.Equal(t, game.ItemConsumable, potion.Type)
}

func TestResolve_AttackNoEnemy(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassBarbarian)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindAttack, Name: "ATTACK"}, nil, "I attack")
	require.NoError(t, err)

	assert.Equal(t, "No enemy present to attack.", out.Summary)
	assert.Equal(t, 100, c.HP)
	assert.Nil(t, out.Enemy)
}

func TestResolve_AttackHit(t *testing.T) {
	// Attack roll 15 beats defence 2; counter roll 1 misses (threshold 4).
	r := NewResolver(&scriptedRoller{rolls: []int{15, 1}})
	c := newCharacter(game.ClassBarbarian)
	enemy := game.NewEnemy(game.EnemyGoblin)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindAttack, Name: "ATTACK"}, enemy, "I attack")
	require.NoError(t, err)

	// Barbarian base 10 + default weapon 5: nothing is equipped at start.
	assert.Equal(t, 15, enemy.HP)
	assert.Contains(t, out.Summary, "You attack the Goblin and deal 15 damage!")
	assert.Contains(t, out.Summary, "The Goblin strikes back but misses!")
	assert.False(t, out.EnemyDefeated)
}

func TestResolve_AttackUsesEquippedWeaponDamage(t *testing.T) {
	r := NewResolver(&scriptedRoller{rolls: []int{15, 1}})
	c := newCharacter(game.ClassBarbarian)
	c.Inventory[0].Equipped = true
	c.Inventory[0].Damage = 12
	enemy := game.NewEnemy(game.EnemyGoblin)

	_, err := r.Resolve(c, intent.Intent{Kind: intent.KindAttack, Name: "ATTACK"}, enemy, "I attack")
	require.NoError(t, err)

	// Barbarian base 10 + Great Axe 12.
	assert.Equal(t, 30-22, enemy.HP)
}

func TestResolve_AttackMissStillDrawsCounterAttack(t *testing.T) {
	// Attack roll 1 misses defence 5; counter roll 6 hits (threshold 3).
	r := NewResolver(&scriptedRoller{rolls: []int{1, 6}})
	c := newCharacter(game.ClassMage)
	c.Inventory = nil
	enemy := game.NewEnemy(game.EnemyTroll)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindAttack, Name: "ATTACK"}, enemy, "I attack")
	require.NoError(t, err)

	assert.Equal(t, 60, enemy.HP)
	assert.Equal(t, 100-enemy.Attack, c.HP)
	assert.Contains(t, out.Summary, "You attack the Troll but miss!")
	assert.Contains(t, out.Summary, "The Troll strikes back for 10 damage!")
}

func TestResolve_AttackDefaultWeaponDamage(t *testing.T) {
	r := NewResolver(&scriptedRoller{rolls: []int{20, 1}})
	c := newCharacter(game.ClassMage)
	c.Inventory = nil // nothing equipped
	enemy := game.NewEnemy(game.EnemyGoblin)

	_, err := r.Resolve(c, intent.Intent{Kind: intent.KindAttack, Name: "ATTACK"}, enemy, "I attack")
	require.NoError(t, err)

	// Mage base 6 + default weapon 5.
	assert.Equal(t, 30-11, enemy.HP)
}

func TestResolve_AttackDefeatSkipsCounterAttack(t *testing.T) {
	// Single scripted roll: the counter-attack must not draw one.
	r := NewResolver(&scriptedRoller{rolls: []int{15}})
	c := newCharacter(game.ClassBarbarian)
	enemy := game.NewEnemy(game.EnemyGoblin)
	enemy.HP = 5

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindAttack, Name: "ATTACK"}, enemy, "I attack")
	require.NoError(t, err)

	assert.True(t, out.EnemyDefeated)
	assert.True(t, enemy.Defeated())
	assert.Contains(t, out.Summary, "The Goblin is defeated!")
	assert.NotContains(t, out.Summary, "strikes back")
	assert.Equal(t, 100, c.HP)
}

func TestResolve_SpellNoEnemy(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassMage)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindMagicSkill, Name: "FIREBALL"}, nil, "I cast fireball")
	require.NoError(t, err)
	assert.Equal(t, "No enemy present to cast spell on.", out.Summary)
}

func TestResolve_SpellDamage(t *testing.T) {
	// Counter roll 2 misses Mage threshold 3.
	r := NewResolver(&scriptedRoller{rolls: []int{2}})
	c := newCharacter(game.ClassMage)
	enemy := game.NewEnemy(game.EnemyGoblin)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindMagicSkill, Name: "FIREBALL"}, enemy, "fireball")
	require.NoError(t, err)

	assert.Equal(t, 22, enemy.HP)
	assert.Contains(t, out.Summary, "You cast FIREBALL on the Goblin and deal 8 damage!")
	assert.Equal(t, "Player uses FIREBALL: fireball", out.Action)
}

func TestResolve_SpellDefeat(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassMage)
	enemy := game.NewEnemy(game.EnemyGoblin)
	enemy.HP = 8

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindMagicSkill, Name: "FIREBALL"}, enemy, "fireball")
	require.NoError(t, err)

	assert.True(t, out.EnemyDefeated)
	assert.Equal(t, 0, enemy.HP)
	assert.Contains(t, out.Summary, "The Goblin is defeated!")
}

func TestResolve_CounterAttackCanDefeatCharacter(t *testing.T) {
	r := NewResolver(&scriptedRoller{rolls: []int{1, 6}})
	c := newCharacter(game.ClassBarbarian)
	c.HP = 15
	enemy := game.NewEnemy(game.EnemyDragon)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindAttack, Name: "ATTACK"}, enemy, "I attack")
	require.NoError(t, err)

	assert.Equal(t, 0, c.HP)
	assert.True(t, out.CharacterDefeated)
	assert.Contains(t, out.Summary, "You have been defeated!")
}

func TestResolve_OtherTagRewritesActionOnly(t *testing.T) {
	r := NewResolver(&scriptedRoller{})
	c := newCharacter(game.ClassRanger)
	enemy := game.NewEnemy(game.EnemyGoblin)

	out, err := r.Resolve(c, intent.Intent{Kind: intent.KindOtherSkill, Name: "STEALTH"}, enemy, "I sneak past")
	require.NoError(t, err)

	assert.Empty(t, out.Summary)
	assert.Equal(t, "Player uses STEALTH: I sneak past", out.Action)
	assert.Equal(t, 30, enemy.HP)
	assert.Equal(t, 100, c.HP)
}
