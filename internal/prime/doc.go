// Package prime implements the primality test and the concurrent sweep that
// collects every prime up to an upper bound.
//
// # Concurrency Model
//
// Sweep starts one goroutine per candidate in [2, N] through an
// errgroup.Group. Producers share a single unbuffered channel and the
// calling goroutine drains it. A separate goroutine closes the channel once
// the group's Wait returns, so the consumer's range loop ends exactly when
// the last producer has finished.
//
// Concurrency is unbounded: a sweep over N spawns N-1 goroutines. This keeps
// the fan-in model simple and is fine for the small bounds the tool is meant
// for, but memory grows linearly with N.
//
// # Observability
//
// A Tracker exposes atomic counters that a progress display can poll, and an
// Observer is notified after every test (used for Prometheus counters).
package prime
