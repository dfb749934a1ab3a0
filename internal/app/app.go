package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/daakit/internal/config"
	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/fibonacci"
	"github.com/agbru/daakit/internal/logging"
	"github.com/agbru/daakit/internal/metrics"
	"github.com/agbru/daakit/internal/ui"
)

const tracerName = "github.com/agbru/daakit/internal/app"

// Application represents the daakit application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	Metrics   *metrics.Recorder
	Logger    logging.Logger
	Tracer    trace.Tracer
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the default zerolog logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithTracer replaces the tracer obtained from the global provider.
func WithTracer(t trace.Tracer) AppOption {
	return func(a *Application) { a.Tracer = t }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = r }
}

// New creates an Application by parsing args. args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "daakit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}
	if app.Tracer == nil {
		app.Tracer = otel.Tracer(tracerName)
	}
	if app.Logger == nil {
		logger, err := logging.NewLeveledLogger(errWriter, "daakit", cfg.LogLevel)
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		app.Logger = logger
	}
	return app, nil
}

// Run solves the configured problem, writes the result to out and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	if ui.GetCurrentTheme().Name != ui.NoColorTheme.Name {
		ui.SetTheme(strings.ToLower(a.Config.Theme))
	}

	runID := uuid.NewString()
	inst, err := a.resolveInstance()
	if err != nil {
		a.Logger.Error("invalid input", err, logging.String("run_id", runID))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	ctx, span := a.Tracer.Start(ctx, "daakit."+inst.problem, trace.WithAttributes(
		attribute.String("daakit.problem", inst.problem),
		attribute.String("daakit.run_id", runID),
	))
	defer span.End()

	a.Logger.Info("run started", logging.String("run_id", runID), logging.String("problem", inst.problem))
	start := time.Now()
	code, err := a.dispatch(ctx, inst, out)
	elapsed := time.Since(start)
	a.Metrics.ObserveRun(inst.problem, elapsed, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.Logger.Error("run failed", err, logging.String("run_id", runID), logging.String("problem", inst.problem))
		// A non-zero code means the error was already reported.
		if code == apperrors.ExitSuccess {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			code = apperrors.ExitCodeFor(err)
		}
	} else {
		a.Logger.Info("run finished",
			logging.String("run_id", runID),
			logging.String("problem", inst.problem),
			logging.Float64("duration_ms", float64(elapsed.Microseconds())/1000))
	}

	if a.Config.Metrics {
		fmt.Fprintln(out)
		if werr := a.Metrics.WriteText(out); werr != nil {
			a.Logger.Error("writing metrics", werr)
		}
	}
	return code
}

// dispatch runs the solver for inst.problem. A returned error paired with a
// non-zero code has already been written to out.
func (a *Application) dispatch(ctx context.Context, inst instance, out io.Writer) (int, error) {
	switch inst.problem {
	case config.ProblemFibonacci:
		return a.runFibonacci(ctx, inst, out)
	case config.ProblemJobs:
		return a.runJobs(ctx, inst, out)
	case config.ProblemFractional:
		return a.runFractional(ctx, inst, out)
	case config.ProblemKnapsack:
		return a.runKnapsack(ctx, inst, out)
	default:
		return apperrors.ExitSuccess, apperrors.NewConfigError("unknown problem %q", inst.problem)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
