package models

// BudgetPolicy caps the size of a scanned tree.
// Zero values mean no limit.
type BudgetPolicy struct {
	MaxTokens int64   `json:"max_tokens" yaml:"max_tokens"`
	Model     string  `json:"model,omitempty" yaml:"model,omitempty"`
	MaxCost   float64 `json:"max_cost,omitempty" yaml:"max_cost,omitempty"`
}

// BudgetStatus shows a scan's totals against a policy.
type BudgetStatus struct {
	Policy    BudgetPolicy `json:"policy"`
	Used      int64        `json:"used"`
	Remaining int64        `json:"remaining"`
	Cost      float64      `json:"cost,omitempty"`
	Exceeded  bool         `json:"exceeded"`
}
