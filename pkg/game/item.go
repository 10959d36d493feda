package game

import "fmt"

// ItemType is the closed set of inventory item kinds.
type ItemType string

const (
	ItemPlain      ItemType = "item"
	ItemWeapon     ItemType = "weapon"
	ItemSpecial    ItemType = "special"
	ItemConsumable ItemType = "consumable"
)

// ParseItemType validates an item type from the wire or the store.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemPlain, ItemWeapon, ItemSpecial, ItemConsumable:
		return ItemType(s), nil
	}
	return "", fmt.Errorf("unknown item type: %q", s)
}

// InventoryItem is one entry in a character's inventory. The JSON shape is
// a wire contract with clients and the store and must round-trip exactly:
// Quantity is meaningful only for consumables, Equipped and Damage only for
// weapons. Quantity is a pointer so that zero ("empty stack") survives a
// round-trip; an item at quantity 0 is kept, not removed.
type InventoryItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Description string   `json:"description,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Equipped    bool     `json:"equipped,omitempty"`
	Damage      int      `json:"dmg,omitempty"`
}

// Stackable reports whether the item tracks a quantity.
func (it *InventoryItem) Stackable() bool {
	return it.Quantity != nil
}

// Count returns the quantity, or zero for non-stackable items.
func (it *InventoryItem) Count() int {
	if it.Quantity == nil {
		return 0
	}
	return *it.Quantity
}

// AddQuantity adjusts the stack count, flooring at zero. A non-stackable
// item gains a quantity field the first time it is incremented.
func (it *InventoryItem) AddQuantity(delta int) {
	n := it.Count() + delta
	if n < 0 {
		n = 0
	}
	it.Quantity = &n
}

// NewHealthPotion returns a fresh health potion stack of the given size.
func NewHealthPotion(quantity int) InventoryItem {
	return InventoryItem{
		ID:       "3",
		Name:     HealthPotionName,
		Type:     ItemConsumable,
		Quantity: &quantity,
	}
}

// HealthPotionName is the inventory name the potion and alchemy mechanics
// key on.
const HealthPotionName = "Health potion"
