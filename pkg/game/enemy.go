package game

import (
	"fmt"

	"github.com/google/uuid"
)

// EnemyType identifies one of the spawnable enemy kinds.
type EnemyType string

const (
	EnemyGoblin EnemyType = "Goblin"
	EnemyTroll  EnemyType = "Troll"
	EnemyDragon EnemyType = "Dragon"
)

// EnemyTypes lists every spawnable enemy kind.
var EnemyTypes = []EnemyType{EnemyGoblin, EnemyTroll, EnemyDragon}

// ParseEnemyType validates an enemy type name, ignoring case differences
// handled by the spawn marker scanner.
func ParseEnemyType(s string) (EnemyType, error) {
	switch EnemyType(s) {
	case EnemyGoblin, EnemyTroll, EnemyDragon:
		return EnemyType(s), nil
	}
	return "", fmt.Errorf("unknown enemy type: %q", s)
}

// EnemyStats is the fixed base triple for an enemy type. Defence doubles as
// the hit-chance threshold a player attack roll must meet.
type EnemyStats struct {
	HP      int
	Attack  int
	Defence int
}

// BaseEnemyStats returns the fixed stat triple for an enemy type.
func BaseEnemyStats(t EnemyType) EnemyStats {
	switch t {
	case EnemyGoblin:
		return EnemyStats{HP: 30, Attack: 5, Defence: 2}
	case EnemyTroll:
		return EnemyStats{HP: 60, Attack: 10, Defence: 5}
	case EnemyDragon:
		return EnemyStats{HP: 150, Attack: 20, Defence: 10}
	}
	return EnemyStats{}
}

// Enemy is a transient combat entity. It lives only for the duration of an
// encounter and is never persisted with the character; at most one enemy is
// tracked per encounter.
type Enemy struct {
	ID      string    `json:"id"`
	Type    EnemyType `json:"type"`
	HP      int       `json:"hp"`
	MaxHP   int       `json:"maxHp"`
	Attack  int       `json:"attack"`
	Defence int       `json:"defence"`
}

// NewEnemy instantiates an enemy of the given type from the base stat table.
func NewEnemy(t EnemyType) *Enemy {
	base := BaseEnemyStats(t)
	return &Enemy{
		ID:      "enemy_" + uuid.NewString(),
		Type:    t,
		HP:      base.HP,
		MaxHP:   base.HP,
		Attack:  base.Attack,
		Defence: base.Defence,
	}
}

// Defeated reports whether the enemy has been driven to zero or below.
// HP may go negative transiently within a turn before the enemy is dropped.
func (e *Enemy) Defeated() bool {
	return e.HP <= 0
}
