package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/orchestration"
	"github.com/agbru/daakit/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter with
// colorized terminal output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable prints one row per calculator with its step count,
// duration and status. Padding is computed on the uncolored text.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("--- Comparison Summary ---"))

	maxNameLen, maxStepsLen, maxDurationLen := len("Algorithm"), len("Steps"), len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len([]rune(res.Name)))
		maxStepsLen = max(maxStepsLen, len(formatSteps(res)))
		maxDurationLen = max(maxDurationLen, len([]rune(FormatExecutionDuration(res.Duration))))
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sSteps%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Algorithm")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxStepsLen-len("Steps")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%sSuccess%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		steps := formatSteps(res)
		duration := FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len([]rune(res.Name))),
			ui.ColorMagenta(), steps, ui.ColorReset(), padRight("", maxStepsLen-len(steps)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len([]rune(duration))),
			status)
	}
}

// PresentResult prints the agreed Fibonacci value.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, verbose bool, out io.Writer) {
	DisplayFibonacci(out, result, verbose)
}

// HandleError prints err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	return apperrors.ExitCodeFor(err)
}

func formatSteps(res orchestration.CalculationResult) string {
	if res.Err != nil {
		return "-"
	}
	return humanize.Comma(int64(res.Result.Steps))
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// formatNumber renders a float without trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
