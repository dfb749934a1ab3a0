package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// Calculator is a named Fibonacci strategy.
type Calculator interface {
	// Name returns a human-readable description of the strategy.
	Name() string
	// Mode returns the underlying computation mode.
	Mode() Mode
	// Calculate computes F(n) and its step count.
	Calculate(n int) (Result, error)
}

// modeCalculator adapts a Mode to the Calculator interface.
type modeCalculator struct {
	mode Mode
	name string
}

// NewCalculator returns a Calculator for the given mode.
func NewCalculator(mode Mode) Calculator {
	switch mode {
	case Recursive:
		return modeCalculator{mode: mode, name: "Recursive (O(φⁿ) calls, no memoization)"}
	case Iterative:
		return modeCalculator{mode: mode, name: "Iterative (O(n) additions)"}
	default:
		return modeCalculator{mode: mode, name: mode.String()}
	}
}

func (c modeCalculator) Name() string { return c.name }

func (c modeCalculator) Mode() Mode { return c.mode }

func (c modeCalculator) Calculate(n int) (Result, error) { return Compute(n, c.mode) }

// CalculatorFactory resolves calculators by short name.
type CalculatorFactory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// List returns the registered names in sorted order.
	List() []string
}

// DefaultFactory is a thread-safe registry of calculators.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with "iterative" and "recursive"
// registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: make(map[string]Calculator)}
	f.Register("iterative", NewCalculator(Iterative))
	f.Register("recursive", NewCalculator(Recursive))
	return f
}

// Register adds or replaces a calculator under name.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = calc
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %q", name)
	}
	return calc, nil
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
