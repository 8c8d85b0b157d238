package models

// ModelPricing defines per-million token prices for a model.
type ModelPricing struct {
	Model       string  `json:"model" yaml:"model"`
	InputPrice  float64 `json:"input_per_million" yaml:"input_per_million"`
	OutputPrice float64 `json:"output_per_million" yaml:"output_per_million"`
}

// CostEstimate is the estimated cost of sending (input) or generating (output)
// a token count under one pricing entry.
type CostEstimate struct {
	Model      string  `json:"model"`
	InputCost  float64 `json:"input_cost"`
	OutputCost float64 `json:"output_cost"`
}
