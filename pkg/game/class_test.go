package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClass(t *testing.T) {
	for _, c := range Classes {
		parsed, err := ParseClass(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseClass("Paladin")
	assert.Error(t, err)
	_, err = ParseClass("")
	assert.Error(t, err)
}

func TestClassStats(t *testing.T) {
	assert.Equal(t, 8, ClassStats(ClassMage).Intelligence)
	assert.Equal(t, 8, ClassStats(ClassCleric).Faith)
	assert.Equal(t, 8, ClassStats(ClassBarbarian).Strength)
	assert.Equal(t, 8, ClassStats(ClassRanger).Luck)

	// Unknown class yields the zero block rather than a partial one.
	assert.Equal(t, Stats{}, ClassStats(Class("Bard")))
}

func TestClassSkills(t *testing.T) {
	mage := ClassSkills(ClassMage)
	assert.Len(t, mage.Magic, 4)
	assert.Len(t, mage.NonMagic, 3)
	assert.Equal(t, "Fireball", mage.Magic[0].Name)
	assert.Equal(t, 6, mage.Magic[0].Power)

	ranger := ClassSkills(ClassRanger)
	assert.Len(t, ranger.NonMagic, 5)

	assert.Empty(t, ClassSkills(Class("Bard")).Magic)
}

func TestStartingInventory(t *testing.T) {
	for _, c := range Classes {
		items := StartingInventory(c)
		assert.NotEmpty(t, items, "class %s", c)
	}

	mage := StartingInventory(ClassMage)
	potion := mage[2]
	assert.Equal(t, HealthPotionName, potion.Name)
	assert.Equal(t, ItemConsumable, potion.Type)
	assert.Equal(t, 2, potion.Count())

	// Ranger carries the catalog's duplicated item id; lookups key by name.
	ranger := StartingInventory(ClassRanger)
	assert.Equal(t, ranger[2].ID, ranger[3].ID)
	assert.NotEqual(t, ranger[2].Name, ranger[3].Name)
}

func TestStartingInventoryReturnsFreshCopies(t *testing.T) {
	a := StartingInventory(ClassMage)
	b := StartingInventory(ClassMage)
	a[2].AddQuantity(-1)
	assert.Equal(t, 2, b[2].Count())
}

func TestBaseAttackDamageOrdering(t *testing.T) {
	assert.Greater(t, BaseAttackDamage(ClassBarbarian), BaseAttackDamage(ClassRanger))
	assert.Greater(t, BaseAttackDamage(ClassRanger), BaseAttackDamage(ClassCleric))
	assert.Greater(t, BaseAttackDamage(ClassCleric), BaseAttackDamage(ClassMage))
}

func TestEvasionThreshold(t *testing.T) {
	// Ranger is hardest to hit, mage easiest.
	assert.Greater(t, EvasionThreshold(ClassRanger), EvasionThreshold(ClassBarbarian))
	assert.Greater(t, EvasionThreshold(ClassBarbarian), EvasionThreshold(ClassMage))
}
