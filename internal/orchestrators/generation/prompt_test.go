package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/errors"
)

func TestBuildUnitPrompt(t *testing.T) {
	t.Run("rarity only", func(t *testing.T) {
		prompt, err := BuildUnitPrompt(&GenerateUnitInput{Rarity: entities.RarityRare})
		require.NoError(t, err)

		assert.Contains(t, prompt, "Generate exactly one UNIT. Rarity: Rare.")
		assert.Contains(t, prompt, "Choose exactly ONE archetype from:")
		assert.Contains(t, prompt, "Melee Specialist, Ranger, Mage, Monster Brute, Hybrid")
		assert.Contains(t, prompt, "Respond with ONLY a single JSON object")
		assert.NotContains(t, prompt, "templateId=")
	})

	t.Run("pinned archetype", func(t *testing.T) {
		prompt, err := BuildUnitPrompt(&GenerateUnitInput{
			Rarity:    entities.RarityEpic,
			Archetype: entities.ArchetypeMage,
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "Archetype (MUST use this one): Mage.")
		assert.NotContains(t, prompt, "Choose exactly ONE archetype")
	})

	t.Run("restricted archetypes", func(t *testing.T) {
		prompt, err := BuildUnitPrompt(&GenerateUnitInput{
			Rarity:            entities.RarityEpic,
			AllowedArchetypes: []entities.Archetype{entities.ArchetypeRanger, entities.ArchetypeHybrid},
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "Archetype MUST be exactly one of: Ranger, Hybrid.")
	})

	t.Run("restriction with no valid members falls back to full set", func(t *testing.T) {
		prompt, err := BuildUnitPrompt(&GenerateUnitInput{
			Rarity:            entities.RarityEpic,
			AllowedArchetypes: []entities.Archetype{"Bard", "Necromancer"},
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "Choose exactly ONE archetype from: Melee Specialist, Ranger, Mage, Monster Brute, Hybrid.")
	})

	t.Run("naming hints", func(t *testing.T) {
		prompt, err := BuildUnitPrompt(&GenerateUnitInput{
			Rarity:      entities.RarityCommon,
			TemplateID:  "ash_warden",
			DisplayName: "Ash Warden",
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "Use for name/flavor: templateId=ash_warden, displayName=Ash Warden.")
	})

	t.Run("partial naming hint uses any", func(t *testing.T) {
		prompt, err := BuildUnitPrompt(&GenerateUnitInput{
			Rarity:      entities.RarityCommon,
			DisplayName: "Ash Warden",
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "templateId=any, displayName=Ash Warden.")
	})

	t.Run("invalid rarity fails before composing", func(t *testing.T) {
		_, err := BuildUnitPrompt(&GenerateUnitInput{Rarity: "Artifact"})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestBuildItemPrompt(t *testing.T) {
	t.Run("rarity and slot", func(t *testing.T) {
		prompt, err := BuildItemPrompt(&GenerateItemInput{
			Rarity: entities.RarityMythic,
			Slot:   entities.SlotWeapon,
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "Generate exactly one ITEM. Rarity: Mythic. Slot: Weapon.")
		assert.Contains(t, prompt, "Use modifier: null if rarity is Common, Uncommon, Rare, or Epic.")
		assert.Contains(t, prompt, "No markdown code fences")
	})

	t.Run("invalid slot fails before composing", func(t *testing.T) {
		_, err := BuildItemPrompt(&GenerateItemInput{
			Rarity: entities.RarityCommon,
			Slot:   "Gauntlet",
		})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("invalid rarity fails before composing", func(t *testing.T) {
		_, err := BuildItemPrompt(&GenerateItemInput{
			Rarity: "Junk",
			Slot:   entities.SlotArmor,
		})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
