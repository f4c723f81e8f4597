package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/rulebook"
)

func TestUnitBudget(t *testing.T) {
	tests := []struct {
		name  string
		stats map[entities.StatKey]int
		want  float64
	}{
		{
			name: "hp counts at one third",
			stats: map[entities.StatKey]int{
				entities.StatHPMax:      9,
				entities.StatStaminaMax: 0,
				entities.StatManaMax:    0,
				entities.StatMelee:      0,
				entities.StatRanged:     0,
				entities.StatMagic:      0,
				entities.StatManeuver:   0,
			},
			want: 3,
		},
		{
			name: "resources and action stats count at full weight",
			stats: map[entities.StatKey]int{
				entities.StatHPMax:      0,
				entities.StatStaminaMax: 2,
				entities.StatManaMax:    3,
				entities.StatMelee:      4,
				entities.StatRanged:     1,
				entities.StatMagic:      0,
				entities.StatManeuver:   1,
			},
			want: 11,
		},
		{
			name: "mixed allocation",
			stats: map[entities.StatKey]int{
				entities.StatHPMax:      6,
				entities.StatStaminaMax: 2,
				entities.StatManaMax:    0,
				entities.StatMelee:      5,
				entities.StatRanged:     0,
				entities.StatMagic:      0,
				entities.StatManeuver:   1,
			},
			want: 10,
		},
		{
			name:  "empty map contributes nothing",
			stats: map[entities.StatKey]int{},
			want:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, rulebook.UnitBudget(tc.stats), 1e-9)
		})
	}
}

func TestUnitBudgetFractionalHP(t *testing.T) {
	stats := map[entities.StatKey]int{
		entities.StatHPMax: 10,
		entities.StatMelee: 3,
	}
	assert.InDelta(t, 3+10.0/3.0, rulebook.UnitBudget(stats), 1e-9)
}

func TestItemBudget(t *testing.T) {
	tests := []struct {
		name    string
		bonuses map[entities.StatKey]int
		want    float64
	}{
		{
			name:    "nil map is zero",
			bonuses: nil,
			want:    0,
		},
		{
			name:    "single full-weight bonus",
			bonuses: map[entities.StatKey]int{entities.StatMelee: 2},
			want:    2,
		},
		{
			name: "hp bonus discounted",
			bonuses: map[entities.StatKey]int{
				entities.StatHPMax:      6,
				entities.StatStaminaMax: 1,
			},
			want: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, rulebook.ItemBudget(tc.bonuses), 1e-9)
		})
	}
}

func TestRoundBudget(t *testing.T) {
	assert.Equal(t, 13.33, rulebook.RoundBudget(40.0/3.0))
	assert.Equal(t, 12.67, rulebook.RoundBudget(38.0/3.0))
	assert.Equal(t, 14.0, rulebook.RoundBudget(14.0))
}
