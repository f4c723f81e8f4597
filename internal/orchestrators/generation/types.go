package generation

import (
	"github.com/cardforge/forge-api/internal/entities"
)

// GenerateUnitInput defines the request for generating a unit.
type GenerateUnitInput struct {
	// Rarity is required and must be a member of the closed set.
	Rarity entities.Rarity

	// TemplateID and DisplayName are optional naming hints.
	TemplateID  string
	DisplayName string

	// Archetype pins an exact archetype. AllowedArchetypes restricts the
	// choice to a subset; entries outside the closed set are ignored, and a
	// restriction with no valid members is treated as unrestricted. When both
	// are given the exact archetype must be a member of the restriction.
	Archetype         entities.Archetype
	AllowedArchetypes []entities.Archetype
}

// GenerateUnitOutput defines the response for generating a unit.
type GenerateUnitOutput struct {
	Unit *entities.UnitPayload
}

// GenerateItemInput defines the request for generating an item.
type GenerateItemInput struct {
	// Rarity and Slot are required and must be members of the closed sets.
	Rarity entities.Rarity
	Slot   entities.Slot

	// TemplateID and DisplayName are optional naming hints.
	TemplateID  string
	DisplayName string
}

// GenerateItemOutput defines the response for generating an item.
type GenerateItemOutput struct {
	Item *entities.ItemPayload
}
