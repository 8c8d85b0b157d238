package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".gitignore", cfg.IgnoreFile)
	assert.True(t, cfg.Ignore.Defaults)
	assert.Equal(t, "tiktoken", cfg.Tokenizer.Backend)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Tokenizer.Model)
	assert.Empty(t, cfg.Pricing)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repotokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_BUDGET_MODEL", "gpt-4o-mini")

	path := writeConfig(t, `
ignore_file: .tokenignore
ignore:
  defaults: false
  patterns:
    - "*.gen.go"
    - generated/
extensions: [".proto"]
filenames: ["Makefile"]
tokenizer:
  backend: estimate
pricing:
  - model: local-llm
    input_per_million: 0.5
    output_per_million: 1.5
budget:
  max_tokens: 500000
  model: ${TEST_BUDGET_MODEL}
  max_cost: 2.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".tokenignore", cfg.IgnoreFile)
	assert.False(t, cfg.Ignore.Defaults)
	assert.Equal(t, []string{"*.gen.go", "generated/"}, cfg.Ignore.Patterns)
	assert.Equal(t, []string{".proto"}, cfg.Extensions)
	assert.Equal(t, []string{"Makefile"}, cfg.Filenames)
	assert.Equal(t, "estimate", cfg.Tokenizer.Backend)
	// Unset keys keep their defaults.
	assert.Equal(t, "gpt-3.5-turbo", cfg.Tokenizer.Model)

	require.Len(t, cfg.Pricing, 1)
	assert.Equal(t, "local-llm", cfg.Pricing[0].Model)
	assert.InDelta(t, 1.5, cfg.Pricing[0].OutputPrice, 1e-9)

	assert.Equal(t, int64(500000), cfg.Budget.MaxTokens)
	assert.Equal(t, "gpt-4o-mini", cfg.Budget.Model, "env var not expanded")
	assert.InDelta(t, 2.5, cfg.Budget.MaxCost, 1e-9)
}

func TestLoadPricingWithoutModel(t *testing.T) {
	path := writeConfig(t, `
pricing:
  - input_per_million: 1
    output_per_million: 2
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "ignore: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
