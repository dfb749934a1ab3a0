package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	apperrors "github.com/agbru/daakit/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("daakit", nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Problem != ProblemFibonacci || cfg.N != 10 || cfg.Mode != ModeAll || cfg.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	limit, err := cfg.MemoryLimitBytes()
	if err != nil || limit != 1<<30 {
		t.Errorf("default MemoryLimitBytes() = %d, %v; want %d", limit, err, 1<<30)
	}
}

func TestMemoryLimitBytes_Disabled(t *testing.T) {
	for _, v := range []string{"", "0"} {
		limit, err := AppConfig{MemoryLimit: v}.MemoryLimitBytes()
		if err != nil || limit != 0 {
			t.Errorf("MemoryLimitBytes(%q) = %d, %v; want 0, nil", v, limit, err)
		}
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		"-problem", "knapsack", "-items", "10:60,20:100", "-capacity", "50",
		"-table", "-memory-limit", "1MiB", "-q", "-v", "-no-color", "-metrics", "-theme", "light",
	}
	cfg, err := ParseConfig("daakit", args, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Problem != ProblemKnapsack || cfg.Items != "10:60,20:100" || cfg.Capacity != 50 {
		t.Errorf("problem flags not applied: %+v", cfg)
	}
	if !cfg.ShowTable || !cfg.Quiet || !cfg.Verbose || !cfg.NoColor || !cfg.Metrics {
		t.Errorf("boolean flags not applied: %+v", cfg)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	limit, err := cfg.MemoryLimitBytes()
	if err != nil || limit != 1<<20 {
		t.Errorf("MemoryLimitBytes() = %d, %v; want %d", limit, err, 1<<20)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		isConfig bool
	}{
		{"unknown problem", []string{"-problem", "tsp"}, true},
		{"unknown mode", []string{"-mode", "memoized"}, true},
		{"bad log level", []string{"-log-level", "loud"}, true},
		{"bad memory limit", []string{"-memory-limit", "lots"}, true},
		{"unknown theme", []string{"-theme", "solarized"}, true},
		{"positional argument", []string{"extra"}, true},
		{"undefined flag", []string{"-bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("daakit", tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected an error")
			}
			var configErr apperrors.ConfigError
			if got := errors.As(err, &configErr); got != tt.isConfig {
				t.Errorf("errors.As(ConfigError) = %v, want %v (err: %v)", got, tt.isConfig, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("daakit", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseConfig_NegativeNIsNotAConfigError(t *testing.T) {
	cfg, err := ParseConfig("daakit", []string{"-n", "-3"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != -3 {
		t.Errorf("N = %d, want -3", cfg.N)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"PROBLEM", "jobs")
	t.Setenv(EnvPrefix+"JOBS", "A:2:100")
	t.Setenv(EnvPrefix+"N", "not-a-number")
	t.Setenv(EnvPrefix+"CAPACITY", "12.5")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"VERBOSE", "maybe")
	t.Setenv(EnvPrefix+"THEME", "none")

	cfg, err := ParseConfig("daakit", nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Problem != ProblemJobs || cfg.Jobs != "A:2:100" {
		t.Errorf("string overrides not applied: %+v", cfg)
	}
	if cfg.N != 10 {
		t.Errorf("invalid N override should keep default, got %d", cfg.N)
	}
	if cfg.Capacity != 12.5 {
		t.Errorf("Capacity = %g, want 12.5", cfg.Capacity)
	}
	if cfg.Theme != "none" {
		t.Errorf("Theme = %q, want none", cfg.Theme)
	}
	if !cfg.Quiet || cfg.Verbose {
		t.Errorf("bool overrides wrong: quiet=%v verbose=%v", cfg.Quiet, cfg.Verbose)
	}
}

func TestApplyEnvOverrides_FlagsWin(t *testing.T) {
	t.Setenv(EnvPrefix+"PROBLEM", "jobs")
	t.Setenv(EnvPrefix+"QUIET", "true")

	cfg, err := ParseConfig("daakit", []string{"-problem", "fractional", "-quiet=false"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Problem != ProblemFractional {
		t.Errorf("flag should win over env, got %q", cfg.Problem)
	}
	if cfg.Quiet {
		t.Error("explicit -quiet=false should win over DAAKIT_QUIET")
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"1", false, true},
		{"no", true, false},
		{"0", true, false},
		{"perhaps", true, true},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}
