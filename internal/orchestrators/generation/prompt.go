package generation

import (
	"fmt"
	"strings"

	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/errors"
)

// The rules document is the standing system context; these builders compose
// only the per-request instruction sent alongside it.

// BuildUnitPrompt composes the instruction for unit generation. The rarity
// is checked against the closed set before anything is composed so a bad
// request fails without an external call.
func BuildUnitPrompt(input *GenerateUnitInput) (string, error) {
	if !input.Rarity.Valid() {
		return "", errors.InvalidArgumentf("invalid rarity: %s", input.Rarity)
	}

	parts := []string{
		fmt.Sprintf("Generate exactly one UNIT. Rarity: %s.", input.Rarity),
	}
	if hint := namingHint(input.TemplateID, input.DisplayName); hint != "" {
		parts = append(parts, hint)
	}

	allowed := filterArchetypes(input.AllowedArchetypes)
	switch {
	case input.Archetype != "":
		parts = append(parts, fmt.Sprintf("Archetype (MUST use this one): %s.", input.Archetype))
	case len(allowed) > 0:
		parts = append(parts, fmt.Sprintf("Archetype MUST be exactly one of: %s.", joinArchetypes(allowed)))
	default:
		parts = append(parts, fmt.Sprintf("Choose exactly ONE archetype from: %s.", joinArchetypes(entities.Archetypes)))
	}

	parts = append(parts,
		"Respond with ONLY a single JSON object matching the Unit output format in section 10 (Output Format). "+
			"No markdown code fences, no explanation, no other text.")

	return strings.Join(parts, " "), nil
}

// BuildItemPrompt composes the instruction for item generation, pinning the
// exact equipment slot and forbidding modifiers below the top two tiers.
func BuildItemPrompt(input *GenerateItemInput) (string, error) {
	if !input.Rarity.Valid() {
		return "", errors.InvalidArgumentf("invalid rarity: %s", input.Rarity)
	}
	if !input.Slot.Valid() {
		return "", errors.InvalidArgumentf("invalid slot: %s", input.Slot)
	}

	parts := []string{
		fmt.Sprintf("Generate exactly one ITEM. Rarity: %s. Slot: %s.", input.Rarity, input.Slot),
	}
	if hint := namingHint(input.TemplateID, input.DisplayName); hint != "" {
		parts = append(parts, hint)
	}

	parts = append(parts,
		"Respond with ONLY a single JSON object matching the Item output format in section 10 (Output Format). "+
			"Use modifier: null if rarity is Common, Uncommon, Rare, or Epic. "+
			"No markdown code fences, no explanation, no other text.")

	return strings.Join(parts, " "), nil
}

func namingHint(templateID, displayName string) string {
	if templateID == "" && displayName == "" {
		return ""
	}
	return fmt.Sprintf("Use for name/flavor: templateId=%s, displayName=%s.", orAny(templateID), orAny(displayName))
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// filterArchetypes drops entries outside the closed set, preserving order.
func filterArchetypes(archetypes []entities.Archetype) []entities.Archetype {
	var valid []entities.Archetype
	for _, a := range archetypes {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	return valid
}

func joinArchetypes(archetypes []entities.Archetype) string {
	names := make([]string, len(archetypes))
	for i, a := range archetypes {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
