package rulebook

import (
	"math"

	"github.com/cardforge/forge-api/internal/entities"
)

// Hit points are discounted relative to every other stat when computing a
// budget: raw HP has lower marginal combat value than action stats, while
// resource pools (stamina/mana) count at full weight as action-economy power.
const hpBudgetWeight = 3.0

// UnitBudget computes the total budget of a unit stat map. Absent keys
// contribute zero, so the same formula serves partially filled maps.
func UnitBudget(stats map[entities.StatKey]int) float64 {
	action := stats[entities.StatMelee] +
		stats[entities.StatRanged] +
		stats[entities.StatMagic] +
		stats[entities.StatManeuver]
	resources := stats[entities.StatStaminaMax] + stats[entities.StatManaMax]
	return float64(action) + float64(resources) + float64(stats[entities.StatHPMax])/hpBudgetWeight
}

// ItemBudget computes the budget used by an item bonus map with the same
// weighting: hp_max at one third, every other present key at full weight.
func ItemBudget(bonuses map[entities.StatKey]int) float64 {
	total := 0.0
	for key, value := range bonuses {
		if key == entities.StatHPMax {
			total += float64(value) / hpBudgetWeight
		} else {
			total += float64(value)
		}
	}
	return total
}

// RoundBudget rounds a budget to two decimal places for reporting. Budget
// comparisons are always done on the unrounded value.
func RoundBudget(budget float64) float64 {
	return math.Round(budget*100) / 100
}
