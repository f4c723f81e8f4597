// Package entities defines the data-only types for generated game content.
// NOTE: These are data-only structs. All budget math and payload validation
// is done by the rulebook (internal/rulebook), not here.
package entities

// Rarity is one of the six ordered power tiers.
type Rarity string

// Rarity tiers, in ascending power order.
const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Rarities is the closed, ordered set of rarity tiers.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// Valid reports whether the rarity is a member of the closed set.
func (r Rarity) Valid() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}

// StatKey is one of the seven stat identifiers shared by unit stats and item
// bonuses. The wire names are locked by the game contract.
type StatKey string

// Stat keys.
const (
	StatHPMax      StatKey = "hp_max"
	StatStaminaMax StatKey = "stamina_max"
	StatManaMax    StatKey = "mana_max"
	StatMelee      StatKey = "melee"
	StatRanged     StatKey = "ranged"
	StatMagic      StatKey = "magic"
	StatManeuver   StatKey = "maneuver"
)

// StatKeys is the closed set of stat keys.
var StatKeys = []StatKey{
	StatHPMax,
	StatStaminaMax,
	StatManaMax,
	StatMelee,
	StatRanged,
	StatMagic,
	StatManeuver,
}

// Valid reports whether the key is a member of the closed set.
func (k StatKey) Valid() bool {
	for _, known := range StatKeys {
		if k == known {
			return true
		}
	}
	return false
}
