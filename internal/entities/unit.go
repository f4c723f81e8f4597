package entities

// Archetype is a named combat role used as metadata and as a generation
// constraint for units.
type Archetype string

// Unit archetypes.
const (
	ArchetypeMeleeSpecialist Archetype = "Melee Specialist"
	ArchetypeRanger          Archetype = "Ranger"
	ArchetypeMage            Archetype = "Mage"
	ArchetypeMonsterBrute    Archetype = "Monster Brute"
	ArchetypeHybrid          Archetype = "Hybrid"
)

// Archetypes is the closed set of unit archetypes.
var Archetypes = []Archetype{
	ArchetypeMeleeSpecialist,
	ArchetypeRanger,
	ArchetypeMage,
	ArchetypeMonsterBrute,
	ArchetypeHybrid,
}

// Valid reports whether the archetype is a member of the closed set.
func (a Archetype) Valid() bool {
	for _, known := range Archetypes {
		if a == known {
			return true
		}
	}
	return false
}

// UnitPayload is a validated generated unit. Stats always carries all seven
// stat keys. TotalBudget is the rounded budget computed by the rulebook.
type UnitPayload struct {
	Name                string          `json:"name"`
	Rarity              Rarity          `json:"rarity"`
	Archetype           Archetype       `json:"archetype"`
	Stats               map[StatKey]int `json:"stats"`
	TotalBudget         float64         `json:"total_budget"`
	SuggestedTemplateID string          `json:"suggestedTemplateId"`
}
