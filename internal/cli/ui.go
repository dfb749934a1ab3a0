//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// FormatExecutionDuration renders a run time in the coarsest unit that keeps
// it readable: "< 1µs", whole microseconds, whole milliseconds, then
// time.Duration's own form from one second up.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		if d < time.Microsecond {
			return "< 1µs"
		}
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit count from which a Fibonacci value is
	// truncated in standard output.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of a truncated
	// value.
	DisplayEdges = 25
	// SpinnerRefreshRate is the spinner animation interval.
	SpinnerRefreshRate = 100 * time.Millisecond
)

// Spinner abstracts a terminal spinner so RunWithSpinner can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// RunWithSpinner runs fn while a spinner labelled label animates on out.
// The spinner only draws when out is attached to a terminal.
func RunWithSpinner(out io.Writer, label string, fn func()) {
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + label)
	s.Start()
	defer s.Stop()
	fn()
}

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner written to Out.
type CLIProgressReporter struct {
	Out io.Writer
}

// Track runs fn under a spinner.
func (r CLIProgressReporter) Track(label string, fn func()) {
	RunWithSpinner(r.Out, label, fn)
}
