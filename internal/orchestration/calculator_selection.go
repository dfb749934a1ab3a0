package orchestration

import (
	"github.com/agbru/daakit/internal/fibonacci"
)

// GetCalculatorsToRun resolves a -mode value to calculators. "all" returns
// every registered calculator in name order; "rec" and "iter" are accepted
// as short forms. Unknown modes yield nil.
//
// Parameters:
//   - mode: The mode selection ("recursive", "iterative" or "all").
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []fibonacci.Calculator: The calculators to execute.
func GetCalculatorsToRun(mode string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if mode == "all" {
		keys := factory.List()
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	m, err := fibonacci.ParseMode(mode)
	if err != nil {
		return nil
	}
	if calc, err := factory.Get(m.String()); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}
