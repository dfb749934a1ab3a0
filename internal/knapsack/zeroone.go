package knapsack

import (
	"fmt"

	apperrors "github.com/agbru/daakit/internal/errors"
)

// Item is an indivisible item for the 0/1 knapsack.
type Item struct {
	Weight int
	Profit int
}

// ZeroOne returns the maximum profit of a subset of items whose total weight
// is at most capacity.
//
// Returns an InvalidArgumentError for a negative capacity, a non-positive
// weight or a negative profit, and a MemoryError when the row of capacity+1
// cells cannot be addressed.
//
// It runs in O(n·W) time and keeps a single row of W+1 cells, updated from
// high capacity to low so that each item is counted at most once.
func ZeroOne(items []Item, capacity int) (int, error) {
	if err := validateZeroOne(items, capacity); err != nil {
		return 0, err
	}
	if err := checkStorage(EstimateRowBytes(capacity)); err != nil {
		return 0, err
	}

	best := make([]int, capacity+1)
	for _, it := range items {
		for w := capacity; w >= it.Weight; w-- {
			best[w] = max(best[w], it.Profit+best[w-it.Weight])
		}
	}
	return best[capacity], nil
}

// Table is the full (n+1)×(W+1) dynamic programming table. Cell (i, w) holds
// the best profit using the first i items within capacity w.
type Table struct {
	items    []Item
	capacity int
	cells    [][]int
}

// BuildTable fills the full table for items and capacity. It needs
// O(n·W) memory; see EstimateTableBytes.
func BuildTable(items []Item, capacity int) (*Table, error) {
	if err := validateZeroOne(items, capacity); err != nil {
		return nil, err
	}
	if err := checkStorage(EstimateTableBytes(len(items), capacity)); err != nil {
		return nil, err
	}

	n := len(items)
	cells := make([][]int, n+1)
	for i := range cells {
		cells[i] = make([]int, capacity+1)
	}
	for i := 1; i <= n; i++ {
		it := items[i-1]
		prev, row := cells[i-1], cells[i]
		for w := 1; w <= capacity; w++ {
			if it.Weight > w {
				row[w] = prev[w]
				continue
			}
			row[w] = max(prev[w], it.Profit+prev[w-it.Weight])
		}
	}

	return &Table{items: append([]Item(nil), items...), capacity: capacity, cells: cells}, nil
}

// Best returns cell (i, w). It panics if the cell is out of range.
func (t *Table) Best(i, w int) int { return t.cells[i][w] }

// Rows returns n+1.
func (t *Table) Rows() int { return len(t.cells) }

// Cols returns W+1.
func (t *Table) Cols() int { return t.capacity + 1 }

// Profit returns best[n][W], the answer to the problem.
func (t *Table) Profit() int { return t.cells[len(t.items)][t.capacity] }

// Selected walks back from (n, W) and returns the indices of one optimal
// subset in ascending order.
func (t *Table) Selected() []int {
	var picked []int
	w := t.capacity
	for i := len(t.items); i >= 1; i-- {
		if t.cells[i][w] != t.cells[i-1][w] {
			picked = append(picked, i-1)
			w -= t.items[i-1].Weight
		}
	}
	for l, r := 0, len(picked)-1; l < r; l, r = l+1, r-1 {
		picked[l], picked[r] = picked[r], picked[l]
	}
	return picked
}

func validateZeroOne(items []Item, capacity int) error {
	if capacity < 0 {
		return apperrors.NewInvalidArgument("capacity", "must be non-negative, got %d", capacity)
	}
	for i, it := range items {
		field := fmt.Sprintf("items[%d]", i)
		if it.Weight <= 0 {
			return apperrors.NewInvalidArgument(field+".weight", "must be positive, got %d", it.Weight)
		}
		if it.Profit < 0 {
			return apperrors.NewInvalidArgument(field+".profit", "must be non-negative, got %d", it.Profit)
		}
	}
	return nil
}
