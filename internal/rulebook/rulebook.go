// Package rulebook holds the static game-balance tables and the budget and
// validation logic built on them. The tables are locked game design shared
// with the backend contract; they are loaded once and never mutated.
package rulebook

import (
	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/errors"
)

// BudgetRange is an inclusive [Lo, Hi] budget window for a rarity tier.
type BudgetRange struct {
	Lo int
	Hi int
}

// Contains reports whether the budget falls inside the inclusive range.
func (r BudgetRange) Contains(budget float64) bool {
	return budget >= float64(r.Lo) && budget <= float64(r.Hi)
}

// Rulebook exposes the per-rarity budget ranges, stat caps, and approved
// modifier pools. Build one with New and inject it by reference; all methods
// are read-only and safe for concurrent use.
type Rulebook struct {
	unitBudgets map[entities.Rarity]BudgetRange
	itemBudgets map[entities.Rarity]BudgetRange
	statCaps    map[entities.Rarity]int

	legendaryModifiers []string
	mythicModifiers    []string
	approvedModifiers  map[string]struct{}
}

// New builds the rulebook from the locked design tables.
func New() *Rulebook {
	rb := &Rulebook{
		unitBudgets: map[entities.Rarity]BudgetRange{
			entities.RarityCommon:    {Lo: 12, Hi: 14},
			entities.RarityUncommon:  {Lo: 15, Hi: 18},
			entities.RarityRare:      {Lo: 19, Hi: 23},
			entities.RarityEpic:      {Lo: 24, Hi: 29},
			entities.RarityLegendary: {Lo: 30, Hi: 36},
			entities.RarityMythic:    {Lo: 37, Hi: 45},
		},
		itemBudgets: map[entities.Rarity]BudgetRange{
			entities.RarityCommon:    {Lo: 2, Hi: 2},
			entities.RarityUncommon:  {Lo: 3, Hi: 4},
			entities.RarityRare:      {Lo: 5, Hi: 6},
			entities.RarityEpic:      {Lo: 7, Hi: 9},
			entities.RarityLegendary: {Lo: 10, Hi: 13},
			entities.RarityMythic:    {Lo: 14, Hi: 18},
		},
		statCaps: map[entities.Rarity]int{
			entities.RarityCommon:    6,
			entities.RarityUncommon:  6,
			entities.RarityRare:      8,
			entities.RarityEpic:      8,
			entities.RarityLegendary: 12,
			entities.RarityMythic:    16,
		},
		legendaryModifiers: []string{
			"MOD_FREE_FIRST_ATTACK",
			"MOD_REFUND_RESOURCE_ON_ACTION",
			"MOD_GAIN_RESOURCE_ON_KILL",
			"MOD_BONUS_DAMAGE_FIRST_ACTION",
			"MOD_EXECUTE_LOW_HP",
			"MOD_ARMOR_PIERCE",
			"MOD_APPLY_STATUS_ON_HIT",
			"MOD_HEAL_ON_HIT",
			"MOD_SHIELD_COMBAT_START",
			"MOD_DAMAGE_REDUCTION_LOW_HP",
		},
		mythicModifiers: []string{
			"MOD_SECOND_ACTION_EACH_TURN",
			"MOD_HP_INSTEAD_OF_RESOURCE",
			"MOD_CONVERT_RESOURCE_TO_STAT",
			"MOD_HIGHEST_STAT_APPLIES",
			"MOD_CHEAT_DEATH_ONCE",
			"MOD_GAIN_STAT_ON_ACTION",
		},
	}

	rb.approvedModifiers = make(map[string]struct{}, len(rb.legendaryModifiers)+len(rb.mythicModifiers))
	for _, id := range rb.legendaryModifiers {
		rb.approvedModifiers[id] = struct{}{}
	}
	for _, id := range rb.mythicModifiers {
		rb.approvedModifiers[id] = struct{}{}
	}

	return rb
}

// UnitBudgetRange returns the unit budget range for a rarity. An unknown
// rarity is a caller error, never a silent default.
func (rb *Rulebook) UnitBudgetRange(rarity entities.Rarity) (BudgetRange, error) {
	rng, ok := rb.unitBudgets[rarity]
	if !ok {
		return BudgetRange{}, errors.InvalidArgumentf("invalid rarity: %s", rarity)
	}
	return rng, nil
}

// ItemBudgetRange returns the item budget range for a rarity.
func (rb *Rulebook) ItemBudgetRange(rarity entities.Rarity) (BudgetRange, error) {
	rng, ok := rb.itemBudgets[rarity]
	if !ok {
		return BudgetRange{}, errors.InvalidArgumentf("invalid rarity: %s", rarity)
	}
	return rng, nil
}

// StatCap returns the maximum permitted value of any single stat or bonus at
// a rarity.
func (rb *Rulebook) StatCap(rarity entities.Rarity) (int, error) {
	cap, ok := rb.statCaps[rarity]
	if !ok {
		return 0, errors.InvalidArgumentf("invalid rarity: %s", rarity)
	}
	return cap, nil
}

// ModifierAllowed reports whether items of the rarity may carry a modifier.
// Only the top two tiers qualify.
func (rb *Rulebook) ModifierAllowed(rarity entities.Rarity) bool {
	return rarity == entities.RarityLegendary || rarity == entities.RarityMythic
}

// ApprovedModifier reports whether the identifier belongs to the union of
// the Legendary and Mythic pools. The pools are deliberately not segregated
// by tier; the rules allow either pool at both top tiers.
func (rb *Rulebook) ApprovedModifier(id string) bool {
	_, ok := rb.approvedModifiers[id]
	return ok
}

// LegendaryModifiers returns a copy of the Legendary modifier pool.
func (rb *Rulebook) LegendaryModifiers() []string {
	out := make([]string, len(rb.legendaryModifiers))
	copy(out, rb.legendaryModifiers)
	return out
}

// MythicModifiers returns a copy of the Mythic modifier pool.
func (rb *Rulebook) MythicModifiers() []string {
	out := make([]string, len(rb.mythicModifiers))
	copy(out, rb.mythicModifiers)
	return out
}
