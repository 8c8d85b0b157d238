package report

import "fmt"

// FormatCost renders a dollar amount with more precision for small values:
// four decimals under one cent, three under ten cents, two otherwise.
func FormatCost(cost float64) string {
	switch {
	case cost < 0.01:
		return fmt.Sprintf("$%.4f", cost)
	case cost < 0.1:
		return fmt.Sprintf("$%.3f", cost)
	default:
		return fmt.Sprintf("$%.2f", cost)
	}
}
