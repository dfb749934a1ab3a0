package knapsack

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	apperrors "github.com/agbru/daakit/internal/errors"
)

// FractionalItem is an item that may be taken in any fraction of its weight.
type FractionalItem struct {
	Weight float64
	Profit float64
}

// Density returns profit per unit weight. It is only defined for a positive
// weight; Fractional rejects items where it is not.
func (it FractionalItem) Density() float64 {
	return it.Profit / it.Weight
}

// Portion records how much of one input item was packed.
type Portion struct {
	// Index is the position of the item in the input slice.
	Index int
	// Fraction is in (0, 1].
	Fraction float64
	// Weight and Profit are the packed amounts.
	Weight float64
	Profit float64
}

// FractionalResult is the outcome of Fractional.
type FractionalResult struct {
	// Profit is the maximum total profit.
	Profit float64
	// Portions lists what was packed, in the order it was taken.
	Portions []Portion
}

// Fractional returns the maximum profit that fits in capacity when items may
// be split.
//
// Items are taken by density, highest first (equal densities keep input
// order): whole while they fit, then the remaining capacity as a fraction of
// the next item.
//
// Returns an InvalidArgumentError for a non-positive weight, a negative
// profit, a negative capacity, or any non-finite value.
func Fractional(items []FractionalItem, capacity float64) (FractionalResult, error) {
	if err := validateCapacity(capacity); err != nil {
		return FractionalResult{}, err
	}
	for i, it := range items {
		if err := validateFractionalItem(i, it); err != nil {
			return FractionalResult{}, err
		}
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(items[b].Density(), items[a].Density())
	})

	var res FractionalResult
	remaining := capacity
	for _, idx := range order {
		if remaining <= 0 {
			break
		}
		it := items[idx]
		if it.Weight <= remaining {
			remaining -= it.Weight
			res.Profit += it.Profit
			res.Portions = append(res.Portions, Portion{Index: idx, Fraction: 1, Weight: it.Weight, Profit: it.Profit})
			continue
		}
		part := it.Density() * remaining
		res.Profit += part
		res.Portions = append(res.Portions, Portion{Index: idx, Fraction: remaining / it.Weight, Weight: remaining, Profit: part})
		break
	}
	return res, nil
}

func validateCapacity(capacity float64) error {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity < 0 {
		return apperrors.NewInvalidArgument("capacity", "must be a finite non-negative number, got %g", capacity)
	}
	return nil
}

func validateFractionalItem(i int, it FractionalItem) error {
	field := fmt.Sprintf("items[%d]", i)
	if math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) || it.Weight <= 0 {
		return apperrors.NewInvalidArgument(field+".weight", "must be a finite positive number, got %g", it.Weight)
	}
	if math.IsNaN(it.Profit) || math.IsInf(it.Profit, 0) || it.Profit < 0 {
		return apperrors.NewInvalidArgument(field+".profit", "must be a finite non-negative number, got %g", it.Profit)
	}
	return nil
}
