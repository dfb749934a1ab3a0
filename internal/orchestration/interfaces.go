package orchestration

import (
	"io"
	"time"

	"github.com/agbru/daakit/internal/fibonacci"
)

// CalculationResult is the outcome of one calculator run. It is the shared
// type between orchestration and presentation.
type CalculationResult struct {
	// Name is the calculator description.
	Name string
	// Result holds the value and step count. Result.Value is nil on error.
	Result fibonacci.Result
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is the error returned by the calculator, if any.
	Err error
}

// ProgressReporter shows activity while a calculator runs.
type ProgressReporter interface {
	// Track runs fn while displaying label.
	Track(label string, fn func())
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(label string, fn func())

// Track calls f.
func (f ProgressReporterFunc) Track(label string, fn func()) { f(label, fn) }

// NullProgressReporter runs fn without any display. Used in quiet mode and
// tests.
type NullProgressReporter struct{}

// Track calls fn.
func (NullProgressReporter) Track(_ string, fn func()) { fn() }

// ResultPresenter presents calculation results.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per calculator.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the agreed value.
	PresentResult(result CalculationResult, verbose bool, out io.Writer)
	// HandleError reports a failed run and returns its exit code.
	HandleError(err error, out io.Writer) int
}
