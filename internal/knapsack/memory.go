package knapsack

import (
	"math"
	"math/bits"
	"strconv"

	apperrors "github.com/agbru/daakit/internal/errors"
)

// cellBytes is the size of one table cell.
const cellBytes = strconv.IntSize / 8

// maxAllocBytes is the largest storage ZeroOne or BuildTable will request.
// Anything above cannot be indexed by an int.
const maxAllocBytes = uint64(math.MaxInt)

// EstimateTableBytes returns the memory needed by BuildTable for n items and
// the given capacity. The result saturates at math.MaxUint64.
func EstimateTableBytes(n, capacity int) uint64 {
	if n < 0 || capacity < 0 {
		return 0
	}
	return mulSaturating(mulSaturating(uint64(n)+1, uint64(capacity)+1), cellBytes)
}

// EstimateRowBytes returns the memory needed by ZeroOne for the given
// capacity. The result saturates at math.MaxUint64.
func EstimateRowBytes(capacity int) uint64 {
	if capacity < 0 {
		return 0
	}
	return mulSaturating(uint64(capacity)+1, cellBytes)
}

func mulSaturating(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// checkStorage rejects storage that cannot be allocated as Go slices.
func checkStorage(need uint64) error {
	if need > maxAllocBytes {
		return apperrors.MemoryError{Requested: need, Limit: maxAllocBytes}
	}
	return nil
}
