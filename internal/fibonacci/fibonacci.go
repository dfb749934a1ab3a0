package fibonacci

import (
	"fmt"
	"math/big"
	"strings"

	apperrors "github.com/agbru/daakit/internal/errors"
)

// Mode selects the computation strategy.
type Mode int

const (
	// Recursive evaluates F(n) = F(n-1) + F(n-2) by direct double recursion.
	Recursive Mode = iota
	// Iterative keeps two rolling predecessors and makes a single pass.
	Iterative
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recursive", "rec":
		return Recursive, nil
	case "iterative", "iter":
		return Iterative, nil
	default:
		return 0, apperrors.NewInvalidArgument("mode", "unknown mode %q", s)
	}
}

// Result is the outcome of one Fibonacci computation.
type Result struct {
	// N is the requested index.
	N int
	// Mode is the strategy that produced the value.
	Mode Mode
	// Value is F(N).
	Value *big.Int
	// Steps is the operation count: invocations for Recursive (including
	// the initial call), additive updates for Iterative.
	Steps uint64
}

// Compute returns F(n) using the given mode.
//
// Parameters:
//   - n: The Fibonacci index, must be non-negative.
//   - mode: The computation strategy.
//
// Returns:
//   - Result: The value and step count.
//   - error: An InvalidArgumentError if n is negative or mode is unknown.
func Compute(n int, mode Mode) (Result, error) {
	switch mode {
	case Recursive:
		return ComputeRecursive(n)
	case Iterative:
		return ComputeIterative(n)
	default:
		return Result{}, apperrors.NewInvalidArgument("mode", "unknown mode %d", int(mode))
	}
}

// ComputeRecursive returns F(n) by plain double recursion. The running time
// is exponential in n; callers wanting a bounded cost use ComputeIterative.
func ComputeRecursive(n int) (Result, error) {
	if err := validateIndex(n); err != nil {
		return Result{}, err
	}
	var steps uint64
	value := recurse(n, &steps)
	return Result{N: n, Mode: Recursive, Value: value, Steps: steps}, nil
}

// recurse counts one step per invocation and recomputes overlapping
// subproblems on purpose.
func recurse(n int, steps *uint64) *big.Int {
	*steps++
	if n <= 1 {
		return big.NewInt(int64(n))
	}
	a := recurse(n-1, steps)
	return a.Add(a, recurse(n-2, steps))
}

// ComputeIterative returns F(n) in one pass over two rolling predecessors.
// Steps is the number of additions performed, max(n-1, 0).
func ComputeIterative(n int) (Result, error) {
	if err := validateIndex(n); err != nil {
		return Result{}, err
	}
	if n == 0 {
		return Result{N: n, Mode: Iterative, Value: big.NewInt(0)}, nil
	}

	prev, curr := big.NewInt(0), big.NewInt(1)
	var steps uint64
	for i := 2; i <= n; i++ {
		prev.Add(prev, curr)
		prev, curr = curr, prev
		steps++
	}
	return Result{N: n, Mode: Iterative, Value: curr, Steps: steps}, nil
}

func validateIndex(n int) error {
	if n < 0 {
		return apperrors.NewInvalidArgument("n", "must be non-negative, got %d", n)
	}
	return nil
}
