package game

// MaxHP is the hit point ceiling for every character.
const MaxHP = 100

// Stats is the eight-attribute stat block shared by all characters.
type Stats struct {
	Strength     int `json:"strength"`
	Charisma     int `json:"charisma"`
	Faith        int `json:"faith"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`
	Luck         int `json:"luck"`
	Defence      int `json:"defence"`
	Dexterity    int `json:"dexterity"`
}

// Skill is a named ability with a power rating.
type Skill struct {
	Name  string `json:"name"`
	Power int    `json:"power"`
}

// Skills groups a character's abilities into magic and non-magic lists.
// Both lists are derived from the class catalog and never mutated.
type Skills struct {
	Magic    []Skill `json:"magic"`
	NonMagic []Skill `json:"nonMagic"`
}

// Character is a snapshot of a player character. The store owns the
// authoritative copy; the resolver receives a snapshot and returns a
// replacement, it never mutates shared state.
type Character struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Age         int             `json:"age"`
	Description string          `json:"description"`
	HP          int             `json:"hp"`
	Class       Class           `json:"class"`
	Stats       Stats           `json:"stats"`
	Skills      Skills          `json:"skills"`
	Inventory   []InventoryItem `json:"inventory"`
}

// ClampHP bounds hp to [0, MaxHP].
func ClampHP(hp int) int {
	if hp < 0 {
		return 0
	}
	if hp > MaxHP {
		return MaxHP
	}
	return hp
}

// Heal raises HP by amount, capped at MaxHP.
func (c *Character) Heal(amount int) {
	c.HP = ClampHP(c.HP + amount)
}

// TakeDamage lowers HP by amount, floored at zero. Returns true when the
// character drops to zero.
func (c *Character) TakeDamage(amount int) bool {
	c.HP = ClampHP(c.HP - amount)
	return c.HP <= 0
}

// FindItem returns the first inventory entry with the given name, or nil.
// Lookups key by name because item ids are not guaranteed unique.
func (c *Character) FindItem(name string) *InventoryItem {
	for i := range c.Inventory {
		if c.Inventory[i].Name == name {
			return &c.Inventory[i]
		}
	}
	return nil
}

// EquippedWeapon returns the equipped weapon-type item, or nil.
func (c *Character) EquippedWeapon() *InventoryItem {
	for i := range c.Inventory {
		if c.Inventory[i].Type == ItemWeapon && c.Inventory[i].Equipped {
			return &c.Inventory[i]
		}
	}
	return nil
}

// CloneInventory returns a deep copy of the inventory slice so a resolver
// can mutate its snapshot without touching the caller's copy.
func CloneInventory(items []InventoryItem) []InventoryItem {
	if items == nil {
		return nil
	}
	out := make([]InventoryItem, len(items))
	for i, item := range items {
		out[i] = item
		if item.Quantity != nil {
			q := *item.Quantity
			out[i].Quantity = &q
		}
	}
	return out
}
