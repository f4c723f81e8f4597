package entities

// Slot is the equipment category an item occupies.
type Slot string

// Equipment slots.
const (
	SlotWeapon Slot = "Weapon"
	SlotArmor  Slot = "Armor"
	SlotRelic  Slot = "Relic"
)

// Slots is the closed set of equipment slots.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotRelic}

// Valid reports whether the slot is a member of the closed set.
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// Modifier is an optional special effect attached to Legendary and Mythic
// items. ID must come from an approved pool; Name and Description are
// flavor supplied by the generator.
type Modifier struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Empty reports whether the modifier carries no effect identifier. A
// modifier without an ID is treated as absent by validation.
func (m *Modifier) Empty() bool {
	return m == nil || m.ID == ""
}

// ItemPayload is a validated generated item. Bonuses holds a subset of the
// stat keys; absent keys contribute nothing to the budget.
type ItemPayload struct {
	Name                string          `json:"name"`
	Rarity              Rarity          `json:"rarity"`
	Slot                Slot            `json:"slot"`
	Bonuses             map[StatKey]int `json:"bonuses"`
	Modifier            *Modifier       `json:"modifier"`
	TotalBudgetUsed     float64         `json:"total_budget_used"`
	SuggestedTemplateID string          `json:"suggestedTemplateId"`
}
