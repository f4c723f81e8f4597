package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/errors"
	"github.com/cardforge/forge-api/internal/rulebook"
)

func TestUnitBudgetRanges(t *testing.T) {
	rb := rulebook.New()

	expected := map[entities.Rarity]rulebook.BudgetRange{
		entities.RarityCommon:    {Lo: 12, Hi: 14},
		entities.RarityUncommon:  {Lo: 15, Hi: 18},
		entities.RarityRare:      {Lo: 19, Hi: 23},
		entities.RarityEpic:      {Lo: 24, Hi: 29},
		entities.RarityLegendary: {Lo: 30, Hi: 36},
		entities.RarityMythic:    {Lo: 37, Hi: 45},
	}

	for rarity, want := range expected {
		rng, err := rb.UnitBudgetRange(rarity)
		require.NoError(t, err)
		assert.Equal(t, want, rng, "unit range for %s", rarity)
	}
}

func TestItemBudgetRanges(t *testing.T) {
	rb := rulebook.New()

	expected := map[entities.Rarity]rulebook.BudgetRange{
		entities.RarityCommon:    {Lo: 2, Hi: 2},
		entities.RarityUncommon:  {Lo: 3, Hi: 4},
		entities.RarityRare:      {Lo: 5, Hi: 6},
		entities.RarityEpic:      {Lo: 7, Hi: 9},
		entities.RarityLegendary: {Lo: 10, Hi: 13},
		entities.RarityMythic:    {Lo: 14, Hi: 18},
	}

	for rarity, want := range expected {
		rng, err := rb.ItemBudgetRange(rarity)
		require.NoError(t, err)
		assert.Equal(t, want, rng, "item range for %s", rarity)
	}
}

func TestStatCaps(t *testing.T) {
	rb := rulebook.New()

	expected := map[entities.Rarity]int{
		entities.RarityCommon:    6,
		entities.RarityUncommon:  6,
		entities.RarityRare:      8,
		entities.RarityEpic:      8,
		entities.RarityLegendary: 12,
		entities.RarityMythic:    16,
	}

	for rarity, want := range expected {
		cap, err := rb.StatCap(rarity)
		require.NoError(t, err)
		assert.Equal(t, want, cap, "cap for %s", rarity)
	}
}

// The tables must be monotonic: every tier strictly richer than the one
// below it, and caps never shrinking.
func TestTablesAscendAcrossTiers(t *testing.T) {
	rb := rulebook.New()

	for i := 1; i < len(entities.Rarities); i++ {
		lower, higher := entities.Rarities[i-1], entities.Rarities[i]

		lowerUnit, err := rb.UnitBudgetRange(lower)
		require.NoError(t, err)
		higherUnit, err := rb.UnitBudgetRange(higher)
		require.NoError(t, err)
		assert.Greater(t, higherUnit.Lo, lowerUnit.Hi, "unit ranges %s -> %s must not overlap", lower, higher)

		lowerItem, err := rb.ItemBudgetRange(lower)
		require.NoError(t, err)
		higherItem, err := rb.ItemBudgetRange(higher)
		require.NoError(t, err)
		assert.Greater(t, higherItem.Lo, lowerItem.Hi, "item ranges %s -> %s must not overlap", lower, higher)

		lowerCap, err := rb.StatCap(lower)
		require.NoError(t, err)
		higherCap, err := rb.StatCap(higher)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, higherCap, lowerCap, "caps %s -> %s must not shrink", lower, higher)
	}
}

func TestUnknownRarityIsInputError(t *testing.T) {
	rb := rulebook.New()

	_, err := rb.UnitBudgetRange("Artifact")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = rb.ItemBudgetRange("")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = rb.StatCap("common") // case-sensitive
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestModifierAllowedOnlyAtTopTiers(t *testing.T) {
	rb := rulebook.New()

	assert.False(t, rb.ModifierAllowed(entities.RarityCommon))
	assert.False(t, rb.ModifierAllowed(entities.RarityUncommon))
	assert.False(t, rb.ModifierAllowed(entities.RarityRare))
	assert.False(t, rb.ModifierAllowed(entities.RarityEpic))
	assert.True(t, rb.ModifierAllowed(entities.RarityLegendary))
	assert.True(t, rb.ModifierAllowed(entities.RarityMythic))
}

func TestApprovedModifierCoversBothPools(t *testing.T) {
	rb := rulebook.New()

	legendary := rb.LegendaryModifiers()
	mythic := rb.MythicModifiers()
	assert.Len(t, legendary, 10)
	assert.Len(t, mythic, 6)

	for _, id := range legendary {
		assert.True(t, rb.ApprovedModifier(id), "legendary modifier %s", id)
	}
	for _, id := range mythic {
		assert.True(t, rb.ApprovedModifier(id), "mythic modifier %s", id)
	}

	assert.False(t, rb.ApprovedModifier("MOD_MADE_UP"))
	assert.False(t, rb.ApprovedModifier(""))
}

func TestModifierPoolsReturnCopies(t *testing.T) {
	rb := rulebook.New()

	pool := rb.LegendaryModifiers()
	pool[0] = "MOD_TAMPERED"
	assert.Equal(t, "MOD_FREE_FIRST_ATTACK", rb.LegendaryModifiers()[0])

	pool = rb.MythicModifiers()
	pool[0] = "MOD_TAMPERED"
	assert.Equal(t, "MOD_SECOND_ACTION_EACH_TURN", rb.MythicModifiers()[0])
}

func TestBudgetRangeContains(t *testing.T) {
	rng := rulebook.BudgetRange{Lo: 12, Hi: 14}

	assert.True(t, rng.Contains(12))
	assert.True(t, rng.Contains(14))
	assert.True(t, rng.Contains(13.33))
	assert.False(t, rng.Contains(11.99))
	assert.False(t, rng.Contains(14.01))
}
