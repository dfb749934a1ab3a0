package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/daakit/internal/cli"
	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/input"
	"github.com/agbru/daakit/internal/knapsack"
	"github.com/agbru/daakit/internal/logging"
	"github.com/agbru/daakit/internal/metrics"
	"github.com/agbru/daakit/internal/orchestration"
	"github.com/agbru/daakit/internal/sequencing"
)

// errMismatch is recorded when the Fibonacci variants disagree.
var errMismatch = errors.New("fibonacci variants disagree")

func (a *Application) runFibonacci(ctx context.Context, inst instance, out io.Writer) (int, error) {
	calculators := orchestration.GetCalculatorsToRun(inst.mode, a.Factory)
	if len(calculators) == 0 {
		return apperrors.ExitSuccess, apperrors.NewConfigError("unknown mode %q (valid: recursive, iterative, all)", inst.mode)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Config.Quiet {
		reporter = cli.CLIProgressReporter{Out: a.ErrWriter}
	}
	results := orchestration.ExecuteCalculations(calculators, inst.n, reporter)

	span := trace.SpanFromContext(ctx)
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		a.Metrics.AddSteps(r.Result.Mode.String(), r.Result.Steps)
		span.AddEvent("fibonacci computed", trace.WithAttributes(
			attribute.String("mode", r.Result.Mode.String()),
			attribute.Int64("steps", int64(r.Result.Steps)),
		))
		a.Logger.Debug("fibonacci computed",
			logging.String("mode", r.Result.Mode.String()),
			logging.Int("n", r.Result.N),
			logging.Uint64("steps", r.Result.Steps))
	}

	if a.Config.Quiet {
		if firstErr != nil {
			return apperrors.ExitSuccess, firstErr
		}
		for _, r := range results[1:] {
			if r.Result.Value.Cmp(results[0].Result.Value) != 0 {
				fmt.Fprintf(a.ErrWriter, "Error: %v for F(%d)\n", errMismatch, inst.n)
				return apperrors.ExitErrorMismatch, errMismatch
			}
		}
		cli.DisplayQuiet(out, results[0].Result.Value.String())
		return apperrors.ExitSuccess, nil
	}

	code := orchestration.AnalyzeComparisonResults(results, a.Config.Verbose, cli.CLIResultPresenter{}, out)
	switch {
	case code == apperrors.ExitErrorMismatch:
		return code, errMismatch
	case code != apperrors.ExitSuccess:
		return code, firstErr
	}
	return code, nil
}

func (a *Application) runJobs(ctx context.Context, inst instance, out io.Writer) (int, error) {
	s, err := sequencing.Sequence(inst.jobs)
	if err != nil {
		return apperrors.ExitSuccess, err
	}
	a.Metrics.SetProfit(inst.problem, s.TotalProfit)
	trace.SpanFromContext(ctx).AddEvent("schedule built", trace.WithAttributes(
		attribute.Int("scheduled", s.Count),
		attribute.Int("dropped", len(s.Dropped)),
	))
	a.Logger.Debug("schedule built",
		logging.Int("scheduled", s.Count),
		logging.Int("dropped", len(s.Dropped)),
		logging.Float64("profit", s.TotalProfit))

	if a.Config.Quiet {
		cli.DisplayQuiet(out, cli.FormatQuietSchedule(s))
	} else {
		cli.DisplaySchedule(out, inst.jobs, s, a.Config.Verbose)
	}
	return apperrors.ExitSuccess, nil
}

func (a *Application) runFractional(ctx context.Context, inst instance, out io.Writer) (int, error) {
	res, err := knapsack.Fractional(inst.items, inst.capacity)
	if err != nil {
		return apperrors.ExitSuccess, err
	}
	a.Metrics.SetProfit(inst.problem, res.Profit)
	trace.SpanFromContext(ctx).AddEvent("fractional packed", trace.WithAttributes(
		attribute.Int("portions", len(res.Portions)),
		attribute.Float64("profit", res.Profit),
	))

	if a.Config.Quiet {
		cli.DisplayQuiet(out, strconv.FormatFloat(res.Profit, 'f', -1, 64))
	} else {
		cli.DisplayFractional(out, inst.items, inst.capacity, res)
	}
	return apperrors.ExitSuccess, nil
}

// runKnapsack solves the 0/1 problem. The full table is built when it is
// printed (-table) or when selected items are reported (-verbose); otherwise
// the single-row form is used. Either storage must fit -memory-limit.
func (a *Application) runKnapsack(ctx context.Context, inst instance, out io.Writer) (int, error) {
	items, err := input.ToIntegerItems(inst.items)
	if err != nil {
		return apperrors.ExitSuccess, err
	}
	capacity, err := input.IntegerCapacity(inst.capacity)
	if err != nil {
		return apperrors.ExitSuccess, err
	}

	wantTable := a.Config.ShowTable || a.Config.Verbose
	need := knapsack.EstimateRowBytes(capacity)
	if wantTable {
		need = knapsack.EstimateTableBytes(len(items), capacity)
	}
	limit, err := a.Config.MemoryLimitBytes()
	if err != nil {
		return apperrors.ExitSuccess, err
	}
	if limit > 0 && need > limit {
		return apperrors.ExitSuccess, apperrors.MemoryError{Requested: need, Limit: limit}
	}

	var (
		profit int
		table  *knapsack.Table
	)
	if wantTable {
		_, span := a.Tracer.Start(ctx, "knapsack.build_table")
		table, err = knapsack.BuildTable(items, capacity)
		span.End()
		if err == nil {
			profit = table.Profit()
		}
	} else {
		profit, err = knapsack.ZeroOne(items, capacity)
	}
	if err != nil {
		return apperrors.ExitSuccess, err
	}
	a.Metrics.SetProfit(inst.problem, float64(profit))
	a.Logger.Debug("knapsack solved",
		logging.Int("items", len(items)),
		logging.Int("capacity", capacity),
		logging.Uint64("storage_bytes", need))

	if a.Config.Quiet {
		cli.DisplayQuiet(out, strconv.Itoa(profit))
		return apperrors.ExitSuccess, nil
	}
	cli.DisplayZeroOne(out, items, capacity, profit, table, a.Config.ShowTable)
	if a.Config.Verbose {
		cli.DisplayMemoryStats(out, metrics.ReadMemory(), need)
	}
	return apperrors.ExitSuccess, nil
}
