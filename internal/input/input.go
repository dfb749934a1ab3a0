// Package input turns user-supplied text, either compact command-line lists
// or YAML problem files, into typed algorithm inputs.
//
// Parse failures are reported as ConfigErrors. Values that parse but break an
// algorithm's rules (a zero deadline, a zero weight) are passed through and
// rejected by the algorithm itself.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/daakit/internal/errors"
	"github.com/agbru/daakit/internal/knapsack"
	"github.com/agbru/daakit/internal/sequencing"
)

// ParseJobs parses "ID:deadline:profit" entries separated by commas.
func ParseJobs(list string) ([]sequencing.Job, error) {
	entries := splitList(list)
	jobs := make([]sequencing.Job, 0, len(entries))
	for i, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, apperrors.NewConfigError("job %d (%q): want ID:deadline:profit", i+1, entry)
		}
		deadline, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, apperrors.NewConfigError("job %d (%q): bad deadline: %v", i+1, entry, err)
		}
		profit, err := parseFloat(parts[2])
		if err != nil {
			return nil, apperrors.NewConfigError("job %d (%q): bad profit: %v", i+1, entry, err)
		}
		jobs = append(jobs, sequencing.Job{ID: strings.TrimSpace(parts[0]), Deadline: deadline, Profit: profit})
	}
	return jobs, nil
}

// ParseFractionalItems parses "weight:profit" entries separated by commas.
func ParseFractionalItems(list string) ([]knapsack.FractionalItem, error) {
	entries := splitList(list)
	items := make([]knapsack.FractionalItem, 0, len(entries))
	for i, entry := range entries {
		weight, profit, err := parsePair(entry)
		if err != nil {
			return nil, apperrors.NewConfigError("item %d (%q): %v", i+1, entry, err)
		}
		items = append(items, knapsack.FractionalItem{Weight: weight, Profit: profit})
	}
	return items, nil
}

// ParseItems parses "weight:profit" entries for the 0/1 knapsack. Both values
// must be integers.
func ParseItems(list string) ([]knapsack.Item, error) {
	fractional, err := ParseFractionalItems(list)
	if err != nil {
		return nil, err
	}
	return ToIntegerItems(fractional)
}

// ToIntegerItems converts items whose weights and profits are whole numbers.
func ToIntegerItems(items []knapsack.FractionalItem) ([]knapsack.Item, error) {
	out := make([]knapsack.Item, len(items))
	for i, it := range items {
		w, okW := wholeNumber(it.Weight)
		p, okP := wholeNumber(it.Profit)
		if !okW || !okP {
			return nil, apperrors.NewConfigError("item %d (%g:%g): 0/1 knapsack needs integer weight and profit", i+1, it.Weight, it.Profit)
		}
		out[i] = knapsack.Item{Weight: w, Profit: p}
	}
	return out, nil
}

// IntegerCapacity converts a capacity for the 0/1 knapsack.
func IntegerCapacity(capacity float64) (int, error) {
	c, ok := wholeNumber(capacity)
	if !ok {
		return 0, apperrors.NewConfigError("capacity %g: 0/1 knapsack needs an integer capacity", capacity)
	}
	return c, nil
}

func parsePair(entry string) (float64, float64, error) {
	parts := strings.Split(entry, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want weight:profit")
	}
	weight, err := parseFloat(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad weight: %w", err)
	}
	profit, err := parseFloat(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad profit: %w", err)
	}
	return weight, profit, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func wholeNumber(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func splitList(list string) []string {
	var entries []string
	for _, entry := range strings.Split(list, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
