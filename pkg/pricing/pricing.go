// Package pricing estimates what a token count costs under model price tables.
package pricing

import (
	"errors"
	"fmt"

	"github.com/pario-ai/repotokens/pkg/models"
)

// ErrUnknownModel is returned when a model is not in the pricing table.
var ErrUnknownModel = errors.New("unknown model")

// DefaultEntries are the built-in prices in USD per million tokens.
var DefaultEntries = []models.ModelPricing{
	{Model: "gpt-4o", InputPrice: 5.00, OutputPrice: 15.00},
	{Model: "gpt-4o-2024-08-06", InputPrice: 2.50, OutputPrice: 10.00},
	{Model: "gpt-4o-2024-05-13", InputPrice: 5.00, OutputPrice: 15.00},
	{Model: "gpt-4o-mini", InputPrice: 0.150, OutputPrice: 0.600},
	{Model: "gpt-4o-mini-2024-07-18", InputPrice: 0.150, OutputPrice: 0.600},
}

// Table is an ordered, read-only set of pricing entries.
type Table struct {
	entries []models.ModelPricing
	index   map[string]int
}

// NewTable builds a Table from base, then applies overrides: an override with
// the name of an existing entry replaces its prices in place, others are
// appended in order.
func NewTable(base []models.ModelPricing, overrides ...models.ModelPricing) *Table {
	t := &Table{index: make(map[string]int, len(base)+len(overrides))}
	for _, p := range append(append([]models.ModelPricing(nil), base...), overrides...) {
		if i, ok := t.index[p.Model]; ok {
			t.entries[i] = p
			continue
		}
		t.index[p.Model] = len(t.entries)
		t.entries = append(t.entries, p)
	}
	return t
}

// Default returns a Table of DefaultEntries.
func Default() *Table {
	return NewTable(DefaultEntries)
}

// Entries returns the entries in table order.
func (t *Table) Entries() []models.ModelPricing {
	return append([]models.ModelPricing(nil), t.entries...)
}

// Lookup returns the entry for model.
func (t *Table) Lookup(model string) (models.ModelPricing, bool) {
	i, ok := t.index[model]
	if !ok {
		return models.ModelPricing{}, false
	}
	return t.entries[i], true
}

// Calculate estimates the cost of totalTokens under model.
func (t *Table) Calculate(totalTokens int64, model string) (models.CostEstimate, error) {
	p, ok := t.Lookup(model)
	if !ok {
		return models.CostEstimate{}, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return Costs(totalTokens, p), nil
}

// CalculateAll estimates the cost of totalTokens under every entry, in table order.
func (t *Table) CalculateAll(totalTokens int64) []models.CostEstimate {
	costs := make([]models.CostEstimate, 0, len(t.entries))
	for _, p := range t.entries {
		costs = append(costs, Costs(totalTokens, p))
	}
	return costs
}

// Costs applies cost = (tokens / 1M) * price to both prices. No rounding is done.
func Costs(totalTokens int64, p models.ModelPricing) models.CostEstimate {
	millions := float64(totalTokens) / 1_000_000
	return models.CostEstimate{
		Model:      p.Model,
		InputCost:  millions * p.InputPrice,
		OutputCost: millions * p.OutputPrice,
	}
}
