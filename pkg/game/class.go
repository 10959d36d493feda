package game

import "fmt"

// Class identifies one of the four playable character classes.
type Class string

const (
	ClassMage      Class = "Mage"
	ClassCleric    Class = "Cleric"
	ClassBarbarian Class = "Barbarian"
	ClassRanger    Class = "Ranger"
)

// Classes lists every playable class in presentation order.
var Classes = []Class{ClassMage, ClassCleric, ClassBarbarian, ClassRanger}

// ParseClass validates a class name from the wire or the store.
func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case ClassMage, ClassCleric, ClassBarbarian, ClassRanger:
		return Class(s), nil
	}
	return "", fmt.Errorf("unknown character class: %q", s)
}

func (c Class) String() string {
	return string(c)
}

// Valid reports whether c is one of the playable classes.
func (c Class) Valid() bool {
	_, err := ParseClass(string(c))
	return err == nil
}

// ClassStats returns the base stat block for a class.
func ClassStats(c Class) Stats {
	switch c {
	case ClassMage:
		return Stats{Strength: 2, Charisma: 4, Faith: 3, Intelligence: 8, Constitution: 4, Luck: 4, Defence: 4, Dexterity: 1}
	case ClassCleric:
		return Stats{Strength: 2, Charisma: 4, Faith: 8, Intelligence: 4, Constitution: 4, Luck: 5, Defence: 5, Dexterity: 2}
	case ClassBarbarian:
		return Stats{Strength: 8, Charisma: 3, Faith: 2, Intelligence: 1, Constitution: 7, Luck: 6, Defence: 7, Dexterity: 4}
	case ClassRanger:
		return Stats{Strength: 3, Charisma: 8, Faith: 4, Intelligence: 6, Constitution: 5, Luck: 8, Defence: 4, Dexterity: 7}
	}
	return Stats{}
}

// ClassSkills returns the fixed skill set for a class. Skill sets are
// class-determined and never change at runtime.
func ClassSkills(c Class) Skills {
	switch c {
	case ClassMage:
		return Skills{
			Magic: []Skill{
				{Name: "Fireball", Power: 6},
				{Name: "Magic missile", Power: 4},
				{Name: "Teleport", Power: 0},
				{Name: "Magic Shield", Power: 5},
			},
			NonMagic: []Skill{
				{Name: "Alchemy", Power: 3},
				{Name: "Appraisal", Power: 0},
				{Name: "Secret knowledge", Power: 0},
			},
		}
	case ClassCleric:
		return Skills{
			Magic: []Skill{
				{Name: "Heal", Power: 10},
				{Name: "Bless", Power: 3},
				{Name: "Protection", Power: 4},
				{Name: "Turn undead", Power: 8},
			},
			NonMagic: []Skill{
				{Name: "Medicine", Power: 5},
				{Name: "Diplomacy", Power: 0},
			},
		}
	case ClassBarbarian:
		return Skills{
			Magic: []Skill{
				{Name: "Berserk", Power: 7},
				{Name: "Battle Cry", Power: 2},
			},
			NonMagic: []Skill{
				{Name: "Athletics", Power: 0},
				{Name: "Survival", Power: 0},
				{Name: "Intimidation", Power: 0},
			},
		}
	case ClassRanger:
		return Skills{
			Magic: []Skill{
				{Name: "Animal companion", Power: 0},
				{Name: "Natures Blessing", Power: 6},
			},
			NonMagic: []Skill{
				{Name: "Archery", Power: 0},
				{Name: "Stealth", Power: 0},
				{Name: "Herbalism", Power: 0},
				{Name: "Tracking", Power: 0},
				{Name: "Survival", Power: 0},
			},
		}
	}
	return Skills{}
}

// StartingInventory returns a fresh copy of the class starting items.
// Item ids are display-order identifiers only and are not unique;
// inventory lookups must key by name.
func StartingInventory(c Class) []InventoryItem {
	switch c {
	case ClassMage:
		return []InventoryItem{
			{ID: "1", Name: "Spellbook", Type: ItemSpecial, Description: "Ancient tome of magic"},
			{ID: "2", Name: "Staff", Type: ItemWeapon, Description: "Wooden staff used for casting spells"},
			{ID: "3", Name: "Health potion", Type: ItemConsumable, Quantity: intPtr(2)},
		}
	case ClassCleric:
		return []InventoryItem{
			{ID: "1", Name: "Holy Symbol", Type: ItemSpecial, Description: "Symbol of a forgotten diety"},
			{ID: "2", Name: "Mace", Type: ItemWeapon, Description: "Heavy mace"},
			{ID: "3", Name: "Healing kit", Type: ItemConsumable, Quantity: intPtr(3)},
		}
	case ClassBarbarian:
		return []InventoryItem{
			{ID: "1", Name: "Great Axe", Type: ItemWeapon, Description: "Massive two-handed axe"},
			{ID: "2", Name: "Trophy necklace", Type: ItemSpecial, Description: "Necklace of the fallen foes"},
			{ID: "3", Name: "Rations", Type: ItemConsumable, Quantity: intPtr(5)},
		}
	case ClassRanger:
		return []InventoryItem{
			{ID: "1", Name: "Longbow", Type: ItemWeapon, Description: "Precise hunting bow"},
			{ID: "2", Name: "Cloak", Type: ItemSpecial, Description: "Stealthy cloak"},
			{ID: "3", Name: "Arrows", Type: ItemConsumable, Quantity: intPtr(20)},
			{ID: "3", Name: "Herbs", Type: ItemConsumable, Quantity: intPtr(3)},
		}
	}
	return nil
}

// BaseAttackDamage returns the class contribution to a weapon attack.
func BaseAttackDamage(c Class) int {
	switch c {
	case ClassBarbarian:
		return 10
	case ClassRanger:
		return 8
	case ClassCleric:
		return 7
	case ClassMage:
		return 6
	}
	return 0
}

// EvasionThreshold is the minimum enemy counter-attack roll (on a d6) that
// lands a hit on this class. Lower means harder to evade.
func EvasionThreshold(c Class) int {
	switch c {
	case ClassRanger:
		return 5
	case ClassBarbarian:
		return 4
	case ClassMage, ClassCleric:
		return 3
	}
	return 3
}

func intPtr(v int) *int {
	return &v
}
