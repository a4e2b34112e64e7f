package prime

import (
	"context"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// naiveIsPrime is a reference oracle using plain trial division by every
// integer up to the square root.
func naiveIsPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	m := uint64(n)
	for d := uint64(2); d*d <= m; d++ {
		if m%d == 0 {
			return false
		}
	}
	return true
}

// TestIsPrime_PropertyBased checks IsPrime against the naive oracle over the
// full uint32 range.
func TestIsPrime_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("IsPrime agrees with naive trial division", prop.ForAll(
		func(n uint32) bool {
			return IsPrime(n) == naiveIsPrime(n)
		},
		gen.UInt32(),
	))

	properties.Property("a product of two factors > 1 is never prime", prop.ForAll(
		func(a, b uint32) bool {
			return !IsPrime(a * b)
		},
		gen.UInt32Range(2, 65535),
		gen.UInt32Range(2, 65535),
	))

	properties.TestingRun(t)
}

// TestSweep_PropertyBased verifies the sweep's output invariants for random
// upper bounds: ascending, duplicate free, and exactly the primes in range.
func TestSweep_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Sweep returns exactly the sorted primes in [2, N]", prop.ForAll(
		func(n uint32) bool {
			res := Sweep(context.Background(), n)

			var want []uint32
			for i := uint32(2); i <= n; i++ {
				if naiveIsPrime(i) {
					want = append(want, i)
				}
			}
			if len(want) == 0 {
				return len(res.Primes) == 0
			}
			return slices.Equal(res.Primes, want)
		},
		gen.UInt32Range(0, 3000),
	))

	properties.Property("Sweep tests every candidate exactly once", prop.ForAll(
		func(n uint32) bool {
			res := Sweep(context.Background(), n)
			if n < 2 {
				return res.Tested == 0
			}
			return res.Tested == uint64(n)-1
		},
		gen.UInt32Range(0, 3000),
	))

	properties.TestingRun(t)
}
