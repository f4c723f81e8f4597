// Package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/cardforge/forge-api/internal/errors"
)

// Config holds all configuration for the generation service.
type Config struct {
	GenAI GenAIConfig
	Rules RulesConfig
}

// GenAIConfig configures the external generative model. An empty APIKey
// disables the external path and every request is served by the
// deterministic placeholder generator.
type GenAIConfig struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	Model       string  `env:"GENAI_MODEL"`
	Temperature float64 `env:"GENAI_TEMPERATURE"`
}

// RulesConfig locates the standing stat-generation rules document.
type RulesConfig struct {
	Path string `env:"RULES_PATH" envDefault:"stat_generation_rules.txt"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}
