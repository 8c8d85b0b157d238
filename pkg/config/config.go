package config

import (
	"fmt"
	"os"

	"github.com/pario-ai/repotokens/pkg/models"
	"gopkg.in/yaml.v3"
)

// Config holds all repotokens configuration.
type Config struct {
	IgnoreFile string                `yaml:"ignore_file"`
	Ignore     IgnoreConfig          `yaml:"ignore"`
	Extensions []string              `yaml:"extensions"`
	Filenames  []string              `yaml:"filenames"`
	Tokenizer  TokenizerConfig       `yaml:"tokenizer"`
	Pricing    []models.ModelPricing `yaml:"pricing"`
	Budget     models.BudgetPolicy   `yaml:"budget"`
}

// IgnoreConfig controls which ignore patterns apply besides the ignore file.
type IgnoreConfig struct {
	Defaults bool     `yaml:"defaults"`
	Patterns []string `yaml:"patterns"`
}

// TokenizerConfig selects the token counting backend.
// Backend is "tiktoken" (default) or "estimate".
type TokenizerConfig struct {
	Backend string `yaml:"backend"`
	Model   string `yaml:"model"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		IgnoreFile: ".gitignore",
		Ignore: IgnoreConfig{
			Defaults: true,
		},
		Tokenizer: TokenizerConfig{
			Backend: "tiktoken",
			Model:   "gpt-3.5-turbo",
		},
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for i, p := range cfg.Pricing {
		if p.Model == "" {
			return nil, fmt.Errorf("parse config: pricing entry %d has no model", i)
		}
	}

	return cfg, nil
}
