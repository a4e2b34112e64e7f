package prime

import (
	"math"
	"testing"
)

func TestIsPrime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    uint32
		want bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"two", 2, true},
		{"three", 3, true},
		{"four", 4, false},
		{"five", 5, true},
		{"twenty five", 25, false},
		{"forty nine", 49, false},
		{"fifty nine", 59, true},
		{"hundred", 100, false},
		{"square of 6k+1 prime", 169, false},
		{"product of twin primes", 143, false},
		{"7919 (1000th prime)", 7919, true},
		{"largest 16-bit prime", 65521, true},
		{"square of largest 16-bit prime", 65521 * 65521, false},
		{"largest uint32 prime", 4294967291, true},
		{"max uint32", math.MaxUint32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsPrime(tt.n); got != tt.want {
				t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestIsPrime_EvenNumbersAboveTwo(t *testing.T) {
	t.Parallel()
	for n := uint32(4); n <= 10000; n += 2 {
		if IsPrime(n) {
			t.Fatalf("IsPrime(%d) = true, want false", n)
		}
	}
}

func TestIsPrime_MatchesSieve(t *testing.T) {
	t.Parallel()
	const limit = 20000
	composite := make([]bool, limit+1)
	for p := 2; p*p <= limit; p++ {
		if !composite[p] {
			for k := p * p; k <= limit; k += p {
				composite[k] = true
			}
		}
	}
	for n := 0; n <= limit; n++ {
		want := n >= 2 && !composite[n]
		if got := IsPrime(uint32(n)); got != want {
			t.Fatalf("IsPrime(%d) = %v, sieve says %v", n, got, want)
		}
	}
}

func TestEstimatePrimeCount_IsUpperBound(t *testing.T) {
	t.Parallel()
	count := 0
	for n := uint32(0); n <= 100000; n++ {
		if IsPrime(n) {
			count++
		}
		if est := estimatePrimeCount(n); est < count {
			t.Fatalf("estimatePrimeCount(%d) = %d, below actual %d", n, est, count)
		}
	}
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(4294967291)
	}
}
