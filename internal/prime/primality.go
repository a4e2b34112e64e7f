package prime

import "math"

// IsPrime reports whether n is prime using deterministic 6k±1 trial division.
//
// It is a pure function with no shared state, so any number of goroutines may
// call it concurrently. Divisors are handled as uint64 so that d*d never wraps
// for n close to math.MaxUint32.
func IsPrime(n uint32) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	m := uint64(n)
	// d walks 6k-1 for k = 1, 2, ...; d+2 is the matching 6k+1.
	for d := uint64(5); d*d <= m; d += 6 {
		if m%d == 0 || m%(d+2) == 0 {
			return false
		}
	}
	return true
}

// estimatePrimeCount returns an upper bound on the number of primes <= n,
// used to size the collector's slice. It relies on the Rosser–Schoenfeld
// bound pi(n) < 1.25506 * n / ln(n) for n > 1.
func estimatePrimeCount(n uint32) int {
	if n < 2 {
		return 0
	}
	if n < 17 {
		return 6
	}
	x := float64(n)
	return int(math.Ceil(1.25506 * x / math.Log(x)))
}
