package orchestration

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"

	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/fibonacci"
)

// ExecuteCalculations runs each calculator for index n in order and collects
// the timed results. The reporter wraps every run.
//
// Parameters:
//   - calculators: The calculators to execute.
//   - n: The Fibonacci index.
//   - reporter: Progress display (use NullProgressReporter for quiet mode).
//
// Returns:
//   - []CalculationResult: One result per calculator, in input order.
func ExecuteCalculations(calculators []fibonacci.Calculator, n int, reporter ProgressReporter) []CalculationResult {
	results := make([]CalculationResult, len(calculators))
	for i, calc := range calculators {
		reporter.Track(calc.Name(), func() {
			start := time.Now()
			res, err := calc.Calculate(n)
			results[i] = CalculationResult{Name: calc.Name(), Result: res, Duration: time.Since(start), Err: err}
		})
	}
	return results
}

// AnalyzeComparisonResults sorts results (successes first, then by
// duration), presents the comparison table and checks that every successful
// run produced the same value.
//
// Parameters:
//   - results: The results to analyze. The slice is reordered in place.
//   - verbose: Passed to the presenter for the final result.
//   - presenter: The result presenter.
//   - out: The writer for the summary report.
//
// Returns:
//   - int: ExitSuccess, ExitErrorMismatch or the presenter's error code.
func AnalyzeComparisonResults(results []CalculationResult, verbose bool, presenter ResultPresenter, out io.Writer) int {
	slices.SortStableFunc(results, func(a, b CalculationResult) int {
		if (a.Err == nil) != (b.Err == nil) {
			if a.Err == nil {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Duration, b.Duration)
	})

	var firstValid *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		if firstError == nil {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No calculator was run.\n")
			return apperrors.ExitErrorGeneric
		}
		fmt.Fprintf(out, "\nGlobal Status: Failure. No calculator could complete.\n")
		return presenter.HandleError(firstError, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Result.Value.Cmp(firstValid.Result.Value) != 0 {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The calculators disagree on F(%d).\n", firstValid.Result.N)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All results are consistent.\n")
	presenter.PresentResult(*firstValid, verbose, out)
	return apperrors.ExitSuccess
}
