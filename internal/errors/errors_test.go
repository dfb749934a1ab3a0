// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidArgumentError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns formatted message",
			err:      InvalidArgumentError{Field: "n", Message: "must be non-negative"},
			expected: `invalid argument "n": must be non-negative`,
		},
		{
			name:     "NewInvalidArgument formats message",
			err:      NewInvalidArgument("jobs[1].deadline", "must be positive, got %d", 0),
			expected: `invalid argument "jobs[1].deadline": must be positive, got 0`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, ErrInvalidArgument) {
				t.Error("errors.Is should match ErrInvalidArgument")
			}
		})
	}
}

func TestInvalidArgumentError_Wrapped(t *testing.T) {
	t.Parallel()
	inner := NewInvalidArgument("capacity", "must be non-negative")
	err := WrapError(inner, "knapsack")

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("errors.Is should find ErrInvalidArgument through WrapError")
	}
	var argErr InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatal("errors.As should find InvalidArgumentError through WrapError")
	}
	if argErr.Field != "capacity" {
		t.Errorf("expected Field %q, got %q", "capacity", argErr.Field)
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("unknown problem %q", "tsp")
	if err.Error() != `unknown problem "tsp"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Error("ConfigError must not match ErrInvalidArgument")
	}
}

func TestMemoryError(t *testing.T) {
	t.Parallel()
	err := MemoryError{Requested: 4096, Limit: 1024}
	expected := "memory error: table needs 4096 bytes (limit: 1024)"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil, ...) should return nil")
	}
	wrapped := WrapError(errors.New("bad token"), "parsing job %d", 3)
	if wrapped.Error() != "parsing job 3: bad token" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"invalid argument", NewInvalidArgument("n", "negative"), ExitErrorInvalidInput},
		{"wrapped invalid argument", fmt.Errorf("fib: %w", NewInvalidArgument("n", "negative")), ExitErrorInvalidInput},
		{"config error", NewConfigError("bad flag"), ExitErrorConfig},
		{"memory error", MemoryError{Requested: 2, Limit: 1}, ExitErrorConfig},
		{"other error", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor(%v) = %d, expected %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":           ExitSuccess,
		"ExitErrorGeneric":      ExitErrorGeneric,
		"ExitErrorMismatch":     ExitErrorMismatch,
		"ExitErrorConfig":       ExitErrorConfig,
		"ExitErrorInvalidInput": ExitErrorInvalidInput,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
