// Package generation implements the rarity-tiered stat generation
// orchestrator for units and items. Requests either go out to an external
// generative model (when a client is configured) and come back through
// parsing and validation, or are served by the deterministic placeholder
// path. Both paths return payloads that satisfy the rulebook.
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/cardforge/forge-api/internal/orchestrators/generation Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cardforge/forge-api/internal/clients/genai"
	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/errors"
	"github.com/cardforge/forge-api/internal/pkg/idgen"
	"github.com/cardforge/forge-api/internal/repositories/rules"
	"github.com/cardforge/forge-api/internal/rulebook"
)

// Service defines the interface for stat generation.
type Service interface {
	GenerateUnit(ctx context.Context, input *GenerateUnitInput) (*GenerateUnitOutput, error)
	GenerateItem(ctx context.Context, input *GenerateItemInput) (*GenerateItemOutput, error)
}

// Config holds the dependencies for the generation orchestrator.
type Config struct {
	Rulebook *rulebook.Rulebook

	// RulesRepo loads the standing rules document. Required when Client is
	// configured; unused on the placeholder path.
	RulesRepo rules.Repository

	// Client is the external generative model. When nil every request is
	// served by the placeholder path.
	Client genai.Client

	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Rulebook == nil {
		vb.RequiredField("Rulebook")
	}
	if c.Client != nil && c.RulesRepo == nil {
		vb.RequiredField("RulesRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	rulebook  *rulebook.Rulebook
	rulesRepo rules.Repository
	client    genai.Client
	idGen     idgen.Generator
}

// NewOrchestrator creates a new generation orchestrator with the provided
// dependencies.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rulebook:  cfg.Rulebook,
		rulesRepo: cfg.RulesRepo,
		client:    cfg.Client,
		idGen:     cfg.IDGenerator,
	}, nil
}

// GenerateUnit generates a validated unit payload for a rarity.
func (o *orchestrator) GenerateUnit(ctx context.Context, input *GenerateUnitInput) (*GenerateUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Rarity.Valid() {
		return nil, errors.InvalidArgumentf("invalid rarity: %s", input.Rarity)
	}
	if input.Archetype != "" {
		if !input.Archetype.Valid() {
			return nil, errors.InvalidArgumentf("invalid archetype: %s", input.Archetype)
		}
		if len(input.AllowedArchetypes) > 0 && !containsArchetype(input.AllowedArchetypes, input.Archetype) {
			return nil, errors.InvalidArgumentf("archetype %s not in allowed archetypes", input.Archetype)
		}
	}

	if o.client == nil {
		unit, err := o.placeholderUnit(input)
		if err != nil {
			return nil, err
		}
		slog.Info("Unit generated",
			"source", "placeholder",
			"rarity", input.Rarity,
			"total_budget", unit.TotalBudget,
			"suggested_template_id", unit.SuggestedTemplateID,
		)
		return &GenerateUnitOutput{Unit: unit}, nil
	}

	rulesDoc, err := o.rulesRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildUnitPrompt(input)
	if err != nil {
		return nil, err
	}

	reply, err := o.client.GenerateText(ctx, &genai.GenerateTextInput{
		System: rulesDoc.Document,
		Prompt: prompt,
	})
	if err != nil {
		return nil, errors.GenerationFailure(err, "unit generation failed")
	}

	unit, err := o.unitFromReply(input, reply.Text)
	if err != nil {
		return nil, errors.GenerationFailure(err, "unit generation failed")
	}

	slog.Info("Unit generated",
		"source", "model",
		"rarity", input.Rarity,
		"total_budget", unit.TotalBudget,
		"suggested_template_id", unit.SuggestedTemplateID,
	)
	return &GenerateUnitOutput{Unit: unit}, nil
}

// GenerateItem generates a validated item payload for a rarity and slot.
func (o *orchestrator) GenerateItem(ctx context.Context, input *GenerateItemInput) (*GenerateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Rarity.Valid() {
		return nil, errors.InvalidArgumentf("invalid rarity: %s", input.Rarity)
	}
	if !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("invalid slot: %s", input.Slot)
	}

	if o.client == nil {
		item, err := o.placeholderItem(input)
		if err != nil {
			return nil, err
		}
		slog.Info("Item generated",
			"source", "placeholder",
			"rarity", input.Rarity,
			"slot", input.Slot,
			"total_budget_used", item.TotalBudgetUsed,
			"suggested_template_id", item.SuggestedTemplateID,
		)
		return &GenerateItemOutput{Item: item}, nil
	}

	rulesDoc, err := o.rulesRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildItemPrompt(input)
	if err != nil {
		return nil, err
	}

	reply, err := o.client.GenerateText(ctx, &genai.GenerateTextInput{
		System: rulesDoc.Document,
		Prompt: prompt,
	})
	if err != nil {
		return nil, errors.GenerationFailure(err, "item generation failed")
	}

	item, err := o.itemFromReply(input, reply.Text)
	if err != nil {
		return nil, errors.GenerationFailure(err, "item generation failed")
	}

	slog.Info("Item generated",
		"source", "model",
		"rarity", input.Rarity,
		"slot", input.Slot,
		"total_budget_used", item.TotalBudgetUsed,
		"suggested_template_id", item.SuggestedTemplateID,
	)
	return &GenerateItemOutput{Item: item}, nil
}

// unitFromReply parses, coerces, and validates a model reply into a unit
// payload. Missing stats default to zero and missing rarity defaults to the
// request's rarity; values are truncated to integers. The reply is never
// auto-corrected beyond those defaults: a non-compliant payload fails.
func (o *orchestrator) unitFromReply(input *GenerateUnitInput, raw string) (*entities.UnitPayload, error) {
	parsed, err := parseUnitReply(raw)
	if err != nil {
		return nil, err
	}

	rarity := entities.Rarity(parsed.Rarity)
	if rarity == "" {
		rarity = input.Rarity
	}

	stats := make(map[entities.StatKey]int, len(entities.StatKeys))
	for _, key := range entities.StatKeys {
		stats[key] = int(parsed.Stats[string(key)])
	}

	if err := o.rulebook.ValidateUnitStats(input.Rarity, stats); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(parsed.Name)
	if name == "" {
		name = fmt.Sprintf("Unit_%s", input.Rarity)
	}

	return &entities.UnitPayload{
		Name:                name,
		Rarity:              rarity,
		Archetype:           entities.Archetype(parsed.Archetype),
		Stats:               stats,
		TotalBudget:         rulebook.RoundBudget(rulebook.UnitBudget(stats)),
		SuggestedTemplateID: o.idGen.SuggestID(name),
	}, nil
}

// itemFromReply parses, coerces, and validates a model reply into an item
// payload. Bonus keys outside the closed set are dropped, a missing slot
// defaults to the request's slot, and below the top two tiers any modifier
// the model attempted to supply is forcibly nulled before validation.
func (o *orchestrator) itemFromReply(input *GenerateItemInput, raw string) (*entities.ItemPayload, error) {
	parsed, err := parseItemReply(raw)
	if err != nil {
		return nil, err
	}

	rarity := entities.Rarity(parsed.Rarity)
	if rarity == "" {
		rarity = input.Rarity
	}
	slot := entities.Slot(parsed.Slot)
	if slot == "" {
		slot = input.Slot
	}

	bonuses := make(map[entities.StatKey]int, len(parsed.Bonuses))
	for key, value := range parsed.Bonuses {
		if statKey := entities.StatKey(key); statKey.Valid() {
			bonuses[statKey] = int(value)
		}
	}

	modifier := parsed.Modifier
	if !o.rulebook.ModifierAllowed(input.Rarity) {
		modifier = nil
	}

	name := strings.TrimSpace(parsed.Name)
	if name == "" {
		name = fmt.Sprintf("%s_%s", input.Slot, input.Rarity)
	}

	item := &entities.ItemPayload{
		Name:                name,
		Rarity:              rarity,
		Slot:                slot,
		Bonuses:             bonuses,
		Modifier:            modifier,
		SuggestedTemplateID: o.idGen.SuggestID(name),
	}

	if err := o.rulebook.ValidateItem(input.Rarity, input.Slot, item); err != nil {
		return nil, err
	}

	item.TotalBudgetUsed = rulebook.RoundBudget(rulebook.ItemBudget(bonuses))
	return item, nil
}

// placeholderUnit synthesizes a valid unit without external I/O.
func (o *orchestrator) placeholderUnit(input *GenerateUnitInput) (*entities.UnitPayload, error) {
	stats, err := placeholderUnitStats(o.rulebook, input.Rarity)
	if err != nil {
		return nil, err
	}

	name := placeholderName(input.DisplayName, input.TemplateID, fmt.Sprintf("Unit_%s", input.Rarity))

	return &entities.UnitPayload{
		Name:                name,
		Rarity:              input.Rarity,
		Archetype:           placeholderArchetype(input),
		Stats:               stats,
		TotalBudget:         rulebook.RoundBudget(rulebook.UnitBudget(stats)),
		SuggestedTemplateID: o.idGen.SuggestID(name),
	}, nil
}

// placeholderItem synthesizes a valid item without external I/O. Placeholders
// never invent a modifier, even at the top two tiers.
func (o *orchestrator) placeholderItem(input *GenerateItemInput) (*entities.ItemPayload, error) {
	bonuses, err := placeholderItemBonuses(o.rulebook, input.Rarity, input.Slot)
	if err != nil {
		return nil, err
	}

	name := placeholderName(input.DisplayName, input.TemplateID, fmt.Sprintf("%s_%s", input.Slot, input.Rarity))

	return &entities.ItemPayload{
		Name:                name,
		Rarity:              input.Rarity,
		Slot:                input.Slot,
		Bonuses:             bonuses,
		Modifier:            nil,
		TotalBudgetUsed:     rulebook.RoundBudget(rulebook.ItemBudget(bonuses)),
		SuggestedTemplateID: o.idGen.SuggestID(name),
	}, nil
}

func placeholderName(displayName, templateID, fallback string) string {
	if displayName != "" {
		return displayName
	}
	if templateID != "" {
		return templateID
	}
	return fallback
}

func containsArchetype(archetypes []entities.Archetype, target entities.Archetype) bool {
	for _, a := range archetypes {
		if a == target {
			return true
		}
	}
	return false
}
