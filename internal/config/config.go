// Package config parses command-line flags and environment variables into an
// AppConfig. Priority is: flags, then DAAKIT_* environment variables, then
// defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DAAKIT_"

// Problem names accepted by -problem.
const (
	ProblemFibonacci  = "fib"
	ProblemJobs       = "jobs"
	ProblemFractional = "fractional"
	ProblemKnapsack   = "knapsack"
)

// ModeAll runs both Fibonacci variants and compares them.
const ModeAll = "all"

// DefaultMemoryLimit bounds the 0/1 knapsack storage when -memory-limit is
// not given.
const DefaultMemoryLimit = "1GiB"

// Themes lists the valid -theme values.
var Themes = []string{"dark", "light", "none"}

// Problems lists the valid -problem values.
var Problems = []string{ProblemFibonacci, ProblemJobs, ProblemFractional, ProblemKnapsack}

// AppConfig holds the parsed configuration.
type AppConfig struct {
	// Problem selects the algorithm to run.
	Problem string
	// N is the Fibonacci index.
	N int
	// Mode is "recursive", "iterative" or "all".
	Mode string
	// Jobs is a job list such as "A:2:100,B:1:19".
	Jobs string
	// Items is an item list such as "10:60,20:100".
	Items string
	// Capacity is the knapsack capacity.
	Capacity float64
	// InputFile is an optional YAML problem file.
	InputFile string
	// ShowTable prints the full 0/1 dynamic programming table.
	ShowTable bool
	// MemoryLimit caps the dynamic programming table size, e.g. "64MiB".
	MemoryLimit string
	// Metrics dumps Prometheus metrics after the run.
	Metrics bool
	Quiet   bool
	Verbose bool
	NoColor bool
	// Theme is the output color theme: dark, light or none.
	Theme string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Usage and parse errors are written to errWriter. flag.ErrHelp is returned
// unchanged for -h/--help.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Problem, "problem", ProblemFibonacci, "Problem to solve: "+strings.Join(Problems, ", ")+".")
	fs.IntVar(&cfg.N, "n", 10, "Fibonacci index.")
	fs.StringVar(&cfg.Mode, "mode", ModeAll, "Fibonacci mode: recursive, iterative or all.")
	fs.StringVar(&cfg.Jobs, "jobs", "", `Jobs as "ID:deadline:profit,..." (e.g. "A:2:100,B:1:19").`)
	fs.StringVar(&cfg.Items, "items", "", `Knapsack items as "weight:profit,..." (e.g. "10:60,20:100").`)
	fs.Float64Var(&cfg.Capacity, "capacity", 0, "Knapsack capacity.")
	fs.StringVar(&cfg.InputFile, "input", "", "YAML problem file (overrides -n, -jobs, -items and -capacity).")
	fs.BoolVar(&cfg.ShowTable, "table", false, "Print the 0/1 knapsack dynamic programming table.")
	fs.StringVar(&cfg.MemoryLimit, "memory-limit", DefaultMemoryLimit, `Maximum size of the knapsack dynamic programming storage (e.g. "64MiB"); "0" disables the check.`)
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print extra detail (dropped jobs, validation).")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.Theme, "theme", "dark", "Color theme: "+strings.Join(Themes, ", ")+".")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error or disabled.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the fields that do not depend on the problem input.
func (c AppConfig) Validate() error {
	if !isProblem(c.Problem) {
		return apperrors.NewConfigError("unknown problem %q (valid: %s)", c.Problem, strings.Join(Problems, ", "))
	}
	switch strings.ToLower(c.Mode) {
	case "recursive", "iterative", ModeAll:
	default:
		return apperrors.NewConfigError("unknown mode %q (valid: recursive, iterative, all)", c.Mode)
	}
	if !slices.Contains(Themes, strings.ToLower(c.Theme)) {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if _, err := c.MemoryLimitBytes(); err != nil {
		return err
	}
	return nil
}

// MemoryLimitBytes parses MemoryLimit. An empty or zero limit means no limit.
func (c AppConfig) MemoryLimitBytes() (uint64, error) {
	if c.MemoryLimit == "" {
		return 0, nil
	}
	limit, err := humanize.ParseBytes(c.MemoryLimit)
	if err != nil {
		return 0, apperrors.NewConfigError("invalid memory limit %q: %v", c.MemoryLimit, err)
	}
	return limit, nil
}

func isProblem(name string) bool {
	return slices.Contains(Problems, name)
}
