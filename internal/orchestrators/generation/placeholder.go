package generation

import (
	"math"

	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/rulebook"
)

// The placeholder path synthesizes payloads deterministically, with no
// external I/O, and must satisfy the rulebook validator by construction for
// every rarity, slot, and archetype.

// Residual budget is settled across full-weight stats in this order. Melee
// leads because the placeholder unit is shaped as a melee specialist;
// archetype on the returned payload is cosmetic metadata, not stat-shaping.
var unitFillOrder = []entities.StatKey{
	entities.StatMelee,
	entities.StatRanged,
	entities.StatMagic,
	entities.StatManeuver,
	entities.StatStaminaMax,
	entities.StatManaMax,
}

const placeholderMinHP = 6

// placeholderUnitStats allocates a stat map targeting the midpoint of the
// tier's budget range: hit points near half the target (discounted at 1/3
// weight), a small stamina pool, minimal maneuver, and the remainder in
// melee. Whatever the initial allocation under- or over-shoots is settled in
// integer steps across the fill order, under the tier cap, which always
// lands the budget inside the inclusive range.
func placeholderUnitStats(rb *rulebook.Rulebook, rarity entities.Rarity) (map[entities.StatKey]int, error) {
	rng, err := rb.UnitBudgetRange(rarity)
	if err != nil {
		return nil, err
	}
	cap, err := rb.StatCap(rarity)
	if err != nil {
		return nil, err
	}

	target := (rng.Lo + rng.Hi) / 2
	hp := clamp(target/2, placeholderMinHP, cap)
	stamina := min(2, cap)
	melee := clamp(target-hp/3-stamina-1, 1, cap)

	stats := map[entities.StatKey]int{
		entities.StatHPMax:      hp,
		entities.StatStaminaMax: stamina,
		entities.StatManaMax:    0,
		entities.StatMelee:      melee,
		entities.StatRanged:     0,
		entities.StatMagic:      0,
		entities.StatManeuver:   min(1, cap),
	}

	budget := rulebook.UnitBudget(stats)
	switch {
	case budget < float64(rng.Lo):
		raiseStats(stats, int(math.Ceil(float64(rng.Lo)-budget)), cap)
	case budget > float64(rng.Hi):
		lowerStats(stats, int(math.Ceil(budget-float64(rng.Hi))))
	}

	return stats, nil
}

// raiseStats distributes deficit points across the fill order without
// exceeding the cap. Each point adds exactly one to the budget since only
// full-weight stats participate.
func raiseStats(stats map[entities.StatKey]int, deficit, cap int) {
	for _, key := range unitFillOrder {
		if deficit == 0 {
			return
		}
		add := min(cap-stats[key], deficit)
		stats[key] += add
		deficit -= add
	}
}

// lowerStats removes excess points across the fill order, flooring at zero.
func lowerStats(stats map[entities.StatKey]int, excess int) {
	for _, key := range unitFillOrder {
		if excess == 0 {
			return
		}
		take := min(stats[key], excess)
		stats[key] -= take
		excess -= take
	}
}

// placeholderItemBonuses puts the midpoint budget target on the slot's
// signature stat: melee for weapons, hit points for armor, maneuver for
// relics. Armor fills the gap left by the 1/3 hit-point weighting with
// stamina.
func placeholderItemBonuses(rb *rulebook.Rulebook, rarity entities.Rarity, slot entities.Slot) (map[entities.StatKey]int, error) {
	rng, err := rb.ItemBudgetRange(rarity)
	if err != nil {
		return nil, err
	}
	cap, err := rb.StatCap(rarity)
	if err != nil {
		return nil, err
	}

	target := (rng.Lo + rng.Hi) / 2
	bonuses := make(map[entities.StatKey]int, 2)

	switch slot {
	case entities.SlotWeapon:
		bonuses[entities.StatMelee] = min(cap, target)
	case entities.SlotRelic:
		bonuses[entities.StatManeuver] = min(cap, target)
	case entities.SlotArmor:
		hp := min(cap, 3*target)
		bonuses[entities.StatHPMax] = hp
		if rest := float64(target) - float64(hp)/3.0; rest > 0 {
			bonuses[entities.StatStaminaMax] = min(cap, int(math.Ceil(rest)))
		}
	}

	return bonuses, nil
}

// placeholderArchetype resolves the cosmetic archetype on a placeholder
// unit: the pinned archetype, else the first valid allowed archetype, else
// the melee-specialist shape the stats actually follow.
func placeholderArchetype(input *GenerateUnitInput) entities.Archetype {
	if input.Archetype != "" {
		return input.Archetype
	}
	if allowed := filterArchetypes(input.AllowedArchetypes); len(allowed) > 0 {
		return allowed[0]
	}
	return entities.ArchetypeMeleeSpecialist
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
