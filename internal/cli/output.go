// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/agbru/daakit/internal/knapsack"
	"github.com/agbru/daakit/internal/metrics"
	"github.com/agbru/daakit/internal/orchestration"
	"github.com/agbru/daakit/internal/sequencing"
	"github.com/agbru/daakit/internal/ui"
)

// MaxTableColumns is the widest 0/1 table (capacity + 1 columns) that
// DisplayZeroOne prints.
const MaxTableColumns = 40

// FormatValue formats a Fibonacci value with thousands separators. Values
// longer than TruncationLimit digits keep DisplayEdges digits at each end
// unless verbose is set.
func FormatValue(v *big.Int, verbose bool) string {
	s := v.String()
	if !verbose && len(s) > TruncationLimit {
		return fmt.Sprintf("%s...%s (truncated, %d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
	}
	return humanize.BigComma(v)
}

// DisplayFibonacci prints a single Fibonacci result.
func DisplayFibonacci(out io.Writer, res orchestration.CalculationResult, verbose bool) {
	r := res.Result
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Result"))
	fmt.Fprintf(out, "  F(%s%d%s) = %s%s%s\n", ui.ColorMagenta(), r.N, ui.ColorReset(), ui.ColorGreen(), FormatValue(r.Value, verbose), ui.ColorReset())
	fmt.Fprintf(out, "  Mode:   %s\n", r.Mode)
	fmt.Fprintf(out, "  Steps:  %s%s%s\n", ui.ColorCyan(), humanize.Comma(int64(r.Steps)), ui.ColorReset())
	fmt.Fprintf(out, "  Time:   %s\n", FormatExecutionDuration(res.Duration))
	if verbose {
		fmt.Fprintf(out, "  Digits: %d\n", len(r.Value.String()))
	}
}

// DisplaySchedule prints the slot assignments of a job schedule, the total
// profit and the dropped jobs. In verbose mode the schedule is checked
// against jobs and the outcome printed.
func DisplaySchedule(out io.Writer, jobs []sequencing.Job, s sequencing.Schedule, verbose bool) {
	byID := make(map[string]sequencing.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	fmt.Fprintf(out, "%s\n", ui.Heading(fmt.Sprintf("Schedule (%d slots)", s.MaxDeadline)))
	rows := [][]string{{"Slot", "Job", "Deadline", "Profit"}}
	for _, a := range s.Assignments {
		j := byID[a.JobID]
		rows = append(rows, []string{strconv.Itoa(a.Slot), a.JobID, strconv.Itoa(j.Deadline), formatNumber(j.Profit)})
	}
	writeTable(out, rows)

	fmt.Fprintf(out, "Jobs scheduled: %d of %d\n", s.Count, len(jobs))
	fmt.Fprintf(out, "Total profit:   %s%s%s\n", ui.ColorGreen(), formatNumber(s.TotalProfit), ui.ColorReset())
	if len(s.Dropped) > 0 {
		fmt.Fprintf(out, "Dropped:        %s%s%s\n", ui.ColorYellow(), strings.Join(s.Dropped, ", "), ui.ColorReset())
	}
	if verbose {
		if err := s.Validate(jobs); err != nil {
			fmt.Fprintf(out, "Validation:     %sFAILED (%v)%s\n", ui.ColorRed(), err, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "Validation:     %sOK%s\n", ui.ColorGreen(), ui.ColorReset())
		}
	}
}

// DisplayFractional prints the portions taken by the fractional knapsack.
// Items are numbered from 1.
func DisplayFractional(out io.Writer, items []knapsack.FractionalItem, capacity float64, res knapsack.FractionalResult) {
	fmt.Fprintf(out, "%s\n", ui.Heading(fmt.Sprintf("Fractional knapsack (capacity %s)", formatNumber(capacity))))
	rows := [][]string{{"Item", "Weight", "Profit", "Density", "Taken"}}
	used := 0.0
	for _, p := range res.Portions {
		it := items[p.Index]
		taken := "whole"
		if p.Fraction < 1 {
			taken = fmt.Sprintf("%.2f%%", p.Fraction*100)
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Index + 1), formatNumber(it.Weight), formatNumber(it.Profit),
			strconv.FormatFloat(it.Density(), 'g', 6, 64), taken,
		})
		used += p.Weight
	}
	writeTable(out, rows)
	fmt.Fprintf(out, "Weight used:  %s of %s\n", formatNumber(used), formatNumber(capacity))
	fmt.Fprintf(out, "Total profit: %s%s%s\n", ui.ColorGreen(), formatNumber(res.Profit), ui.ColorReset())
}

// DisplayZeroOne prints the 0/1 knapsack optimum. When table is non-nil the
// selected items are listed, and with showTable the dynamic programming table
// is printed if it has at most MaxTableColumns columns.
func DisplayZeroOne(out io.Writer, items []knapsack.Item, capacity, profit int, table *knapsack.Table, showTable bool) {
	fmt.Fprintf(out, "%s\n", ui.Heading(fmt.Sprintf("0/1 knapsack (capacity %d, %d items)", capacity, len(items))))
	fmt.Fprintf(out, "Best profit: %s%d%s\n", ui.ColorGreen(), profit, ui.ColorReset())
	if table == nil {
		return
	}

	selected := table.Selected()
	labels := make([]string, len(selected))
	weight := 0
	for i, idx := range selected {
		labels[i] = strconv.Itoa(idx + 1)
		weight += items[idx].Weight
	}
	if len(labels) == 0 {
		labels = []string{"none"}
	}
	fmt.Fprintf(out, "Selected items: %s (weight %d of %d)\n", strings.Join(labels, ", "), weight, capacity)

	if !showTable {
		return
	}
	if table.Cols() > MaxTableColumns {
		fmt.Fprintf(out, "%sTable has %d columns; printing is limited to %d.%s\n", ui.ColorYellow(), table.Cols(), MaxTableColumns, ui.ColorReset())
		return
	}
	header := []string{"i\\w"}
	for w := 0; w < table.Cols(); w++ {
		header = append(header, strconv.Itoa(w))
	}
	rows := [][]string{header}
	for i := 0; i < table.Rows(); i++ {
		row := []string{strconv.Itoa(i)}
		for w := 0; w < table.Cols(); w++ {
			row = append(row, strconv.Itoa(table.Best(i, w)))
		}
		rows = append(rows, row)
	}
	writeTable(out, rows)
}

// DisplayMemoryStats prints heap statistics and the estimated size of the
// dynamic programming storage.
func DisplayMemoryStats(out io.Writer, snap metrics.MemorySnapshot, storageBytes uint64) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  DP storage: %s\n", humanize.IBytes(storageBytes))
	fmt.Fprintf(out, "  Heap:       %s\n", humanize.IBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  GC cycles:  %d\n", snap.NumGC)
}

// FormatQuietSchedule returns "<profit> <ids>" with ids comma separated in
// slot order.
func FormatQuietSchedule(s sequencing.Schedule) string {
	return strings.TrimSpace(formatNumber(s.TotalProfit) + " " + strings.Join(s.JobIDs(), ","))
}

// DisplayQuiet writes a single line for scripting.
func DisplayQuiet(out io.Writer, line string) {
	fmt.Fprintln(out, line)
}

// writeTable prints rows as left-aligned columns. The first row is the
// header.
func writeTable(out io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}
	for r, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if r == 0 {
				b.WriteString(ui.ColorBold() + cell + ui.ColorReset())
			} else {
				b.WriteString(cell)
			}
			if i < len(row)-1 {
				b.WriteString(padRight("", widths[i]-len(cell)))
			}
		}
		fmt.Fprintln(out, b.String())
	}
}
