package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardforge/forge-api/internal/clients/genai"
	"github.com/cardforge/forge-api/internal/config"
	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/orchestrators/generation"
	"github.com/cardforge/forge-api/internal/pkg/idgen"
	"github.com/cardforge/forge-api/internal/repositories/rules"
	"github.com/cardforge/forge-api/internal/rulebook"
)

var (
	rarityFlag            string
	slotFlag              string
	archetypeFlag         string
	allowedArchetypesFlag []string
	templateIDFlag        string
	displayNameFlag       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate validated stats for units and items",
}

var generateUnitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Generate unit stats for a rarity",
	RunE:  runGenerateUnit,
}

var generateItemCmd = &cobra.Command{
	Use:   "item",
	Short: "Generate item bonuses for a rarity and slot",
	RunE:  runGenerateItem,
}

func init() {
	generateCmd.AddCommand(generateUnitCmd)
	generateCmd.AddCommand(generateItemCmd)

	generateUnitCmd.Flags().StringVar(&rarityFlag, "rarity", "", "rarity tier (Common..Mythic)")
	generateUnitCmd.Flags().StringVar(&archetypeFlag, "archetype", "", "exact archetype to use")
	generateUnitCmd.Flags().StringSliceVar(&allowedArchetypesFlag, "allowed-archetypes", nil, "restrict archetype choice to this subset")
	generateUnitCmd.Flags().StringVar(&templateIDFlag, "template-id", "", "naming hint: template ID")
	generateUnitCmd.Flags().StringVar(&displayNameFlag, "display-name", "", "naming hint: display name")
	_ = generateUnitCmd.MarkFlagRequired("rarity")

	generateItemCmd.Flags().StringVar(&rarityFlag, "rarity", "", "rarity tier (Common..Mythic)")
	generateItemCmd.Flags().StringVar(&slotFlag, "slot", "", "equipment slot (Weapon, Armor, Relic)")
	generateItemCmd.Flags().StringVar(&templateIDFlag, "template-id", "", "naming hint: template ID")
	generateItemCmd.Flags().StringVar(&displayNameFlag, "display-name", "", "naming hint: display name")
	_ = generateItemCmd.MarkFlagRequired("rarity")
	_ = generateItemCmd.MarkFlagRequired("slot")
}

func newService() (generation.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var client genai.Client
	if cfg.GenAI.APIKey != "" {
		openaiClient, err := genai.NewOpenAI(&genai.OpenAIConfig{
			APIKey:      cfg.GenAI.APIKey,
			Model:       cfg.GenAI.Model,
			Temperature: cfg.GenAI.Temperature,
		})
		if err != nil {
			return nil, err
		}
		client = openaiClient
	}

	rulesRepo, err := rules.NewFile(&rules.FileConfig{Path: cfg.Rules.Path})
	if err != nil {
		return nil, err
	}

	return generation.NewOrchestrator(&generation.Config{
		Rulebook:    rulebook.New(),
		RulesRepo:   rulesRepo,
		Client:      client,
		IDGenerator: idgen.NewSlug(),
	})
}

func runGenerateUnit(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	allowed := make([]entities.Archetype, 0, len(allowedArchetypesFlag))
	for _, a := range allowedArchetypesFlag {
		allowed = append(allowed, entities.Archetype(a))
	}

	output, err := svc.GenerateUnit(cmd.Context(), &generation.GenerateUnitInput{
		Rarity:            entities.Rarity(rarityFlag),
		TemplateID:        templateIDFlag,
		DisplayName:       displayNameFlag,
		Archetype:         entities.Archetype(archetypeFlag),
		AllowedArchetypes: allowed,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Unit)
}

func runGenerateItem(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	output, err := svc.GenerateItem(cmd.Context(), &generation.GenerateItemInput{
		Rarity:      entities.Rarity(rarityFlag),
		Slot:        entities.Slot(slotFlag),
		TemplateID:  templateIDFlag,
		DisplayName: displayNameFlag,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Item)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
