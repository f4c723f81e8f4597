package rulebook

import (
	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/errors"
)

// ValidateUnitStats checks a candidate unit stat map against the tables for
// a rarity. Rules are applied in order and the first failure wins:
// stats present, all seven keys present, no extra keys, non-negative values,
// budget inside the tier range, every value under the tier cap.
func (rb *Rulebook) ValidateUnitStats(rarity entities.Rarity, stats map[entities.StatKey]int) error {
	rng, err := rb.UnitBudgetRange(rarity)
	if err != nil {
		return err
	}

	if stats == nil {
		return errors.ValidationViolation("unit must have a stats map")
	}
	for _, key := range entities.StatKeys {
		if _, ok := stats[key]; !ok {
			return errors.ValidationViolationf("unit stats missing required key: %s", key).
				WithMeta("key", string(key))
		}
	}
	for key := range stats {
		if !key.Valid() {
			return errors.ValidationViolationf("unknown stat key: %s", key).
				WithMeta("key", string(key))
		}
	}
	for _, key := range entities.StatKeys {
		if stats[key] < 0 {
			return errors.ValidationViolationf("stat %s must be a non-negative number", key).
				WithMeta("key", string(key)).
				WithMeta("value", stats[key])
		}
	}

	budget := UnitBudget(stats)
	if !rng.Contains(budget) {
		return errors.ValidationViolationf("unit budget %.2f outside range [%d, %d] for %s", budget, rng.Lo, rng.Hi, rarity).
			WithMeta("budget", budget).
			WithMeta("range_lo", rng.Lo).
			WithMeta("range_hi", rng.Hi)
	}

	cap, err := rb.StatCap(rarity)
	if err != nil {
		return err
	}
	for _, key := range entities.StatKeys {
		if stats[key] > cap {
			return errors.ValidationViolationf("stat %s=%d exceeds cap %d for %s", key, stats[key], cap, rarity).
				WithMeta("key", string(key)).
				WithMeta("value", stats[key]).
				WithMeta("cap", cap)
		}
	}

	return nil
}

// ValidateItem checks a candidate item payload against the tables for a
// rarity and the requested slot. Rules in order: slot equality, bonus keys
// inside the closed set, non-negative values, budget inside the tier range,
// modifier gating. A nil bonus map is treated as empty; it still has to
// clear the budget floor.
func (rb *Rulebook) ValidateItem(rarity entities.Rarity, slot entities.Slot, item *entities.ItemPayload) error {
	rng, err := rb.ItemBudgetRange(rarity)
	if err != nil {
		return err
	}

	if item == nil {
		return errors.ValidationViolation("item payload is required")
	}
	if item.Slot != slot {
		return errors.ValidationViolationf("item slot must be %s", slot).
			WithMeta("slot", string(item.Slot)).
			WithMeta("requested_slot", string(slot))
	}

	for key := range item.Bonuses {
		if !key.Valid() {
			return errors.ValidationViolationf("unknown bonus key: %s", key).
				WithMeta("key", string(key))
		}
	}
	for key, value := range item.Bonuses {
		if value < 0 {
			return errors.ValidationViolationf("bonus %s must be a non-negative number", key).
				WithMeta("key", string(key)).
				WithMeta("value", value)
		}
	}

	budget := ItemBudget(item.Bonuses)
	if !rng.Contains(budget) {
		return errors.ValidationViolationf("item budget %.2f outside range [%d, %d] for %s", budget, rng.Lo, rng.Hi, rarity).
			WithMeta("budget", budget).
			WithMeta("range_lo", rng.Lo).
			WithMeta("range_hi", rng.Hi)
	}

	if !rb.ModifierAllowed(rarity) {
		if !item.Modifier.Empty() {
			return errors.ValidationViolation("only Legendary and Mythic items may have a modifier").
				WithMeta("modifier_id", item.Modifier.ID)
		}
		return nil
	}
	if !item.Modifier.Empty() && !rb.ApprovedModifier(item.Modifier.ID) {
		return errors.ValidationViolationf("modifier %s not in approved pool", item.Modifier.ID).
			WithMeta("modifier_id", item.Modifier.ID)
	}

	return nil
}
