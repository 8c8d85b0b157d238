package budget

import (
	"errors"
	"fmt"

	"github.com/pario-ai/repotokens/pkg/models"
	"github.com/pario-ai/repotokens/pkg/pricing"
)

// ErrBudgetExceeded is returned when a scan exceeds the budget.
var ErrBudgetExceeded = errors.New("budget exceeded")

// Enforcer checks scan totals against a budget policy.
type Enforcer struct {
	policy models.BudgetPolicy
	table  *pricing.Table
}

// New creates an Enforcer with the given policy. table prices MaxCost checks.
func New(policy models.BudgetPolicy, table *pricing.Table) *Enforcer {
	return &Enforcer{policy: policy, table: table}
}

// Enabled reports whether the policy sets any limit.
func (e *Enforcer) Enabled() bool {
	return e.policy.MaxTokens > 0 || e.policy.MaxCost > 0
}

// Status returns the aggregate's usage against the policy.
func (e *Enforcer) Status(agg models.Aggregate) (models.BudgetStatus, error) {
	s := models.BudgetStatus{Policy: e.policy, Used: agg.TotalTokens}

	if e.policy.MaxTokens > 0 {
		s.Remaining = max(e.policy.MaxTokens-agg.TotalTokens, 0)
		if agg.TotalTokens > e.policy.MaxTokens {
			s.Exceeded = true
		}
	}

	if e.policy.MaxCost > 0 {
		c, err := e.table.Calculate(agg.TotalTokens, e.policy.Model)
		if err != nil {
			return s, fmt.Errorf("budget status: %w", err)
		}
		s.Cost = c.InputCost
		if c.InputCost > e.policy.MaxCost {
			s.Exceeded = true
		}
	}

	return s, nil
}

// Check returns ErrBudgetExceeded if the aggregate exceeds the policy.
func (e *Enforcer) Check(agg models.Aggregate) error {
	s, err := e.Status(agg)
	if err != nil {
		return err
	}
	if !s.Exceeded {
		return nil
	}
	if e.policy.MaxTokens > 0 && s.Used > e.policy.MaxTokens {
		return fmt.Errorf("%w: %d tokens over limit of %d", ErrBudgetExceeded, s.Used-e.policy.MaxTokens, e.policy.MaxTokens)
	}
	return fmt.Errorf("%w: %s input cost $%.4f over limit of $%.4f", ErrBudgetExceeded, e.policy.Model, s.Cost, e.policy.MaxCost)
}
