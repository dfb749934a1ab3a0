package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestVariantsAgree_PropertyBased verifies that the recursive and iterative
// variants return the same value for every n in [0, 25].
func TestVariantsAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("recursive and iterative agree", prop.ForAll(
		func(n int) bool {
			rec, err := ComputeRecursive(n)
			if err != nil {
				return false
			}
			iter, err := ComputeIterative(n)
			if err != nil {
				return false
			}
			return rec.Value.Cmp(iter.Value) == 0
		},
		gen.IntRange(0, 25),
	))

	properties.TestingRun(t)
}

// TestStepCounts_PropertyBased verifies the step identities:
//
//	recursive steps = 2·F(n+1) − 1
//	iterative steps = max(n−1, 0)
func TestStepCounts_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("recursive steps equal 2·F(n+1)−1", prop.ForAll(
		func(n int) bool {
			rec, err := ComputeRecursive(n)
			if err != nil {
				return false
			}
			next, err := ComputeIterative(n + 1)
			if err != nil {
				return false
			}
			want := new(big.Int).Lsh(next.Value, 1)
			want.Sub(want, big.NewInt(1))
			return want.IsUint64() && want.Uint64() == rec.Steps
		},
		gen.IntRange(0, 24),
	))

	properties.Property("iterative steps equal max(n−1, 0)", prop.ForAll(
		func(n int) bool {
			iter, err := ComputeIterative(n)
			if err != nil {
				return false
			}
			want := uint64(0)
			if n > 1 {
				want = uint64(n - 1)
			}
			return iter.Steps == want
		},
		gen.IntRange(0, 5000),
	))

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased checks F(n-1)·F(n+1) − F(n)² = (−1)ⁿ
// on the iterative variant, well past the range of machine integers.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("iterative satisfies Cassini's identity", prop.ForAll(
		func(n int) bool {
			prev, err1 := ComputeIterative(n - 1)
			curr, err2 := ComputeIterative(n)
			next, err3 := ComputeIterative(n + 1)
			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}

			left := new(big.Int).Mul(prev.Value, next.Value)
			left.Sub(left, new(big.Int).Mul(curr.Value, curr.Value))

			right := big.NewInt(1)
			if n%2 != 0 {
				right.Neg(right)
			}
			return left.Cmp(right) == 0
		},
		gen.IntRange(1, 3000),
	))

	properties.TestingRun(t)
}
