// SPDX-License-Identifier: MIT
// Package procrustes: functional configuration for Test.

package procrustes

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultPermutations is the draw count for protest and randtest.
	DefaultPermutations = 999

	// DefaultRtestPermutations is the legacy draw count for rtest.
	DefaultRtestPermutations = 99

	// MinRows is the smallest row count a test accepts.
	MinRows = 3
)

// Option mutates test configuration. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	permutations int   // 0 = method default; validated > 0 otherwise
	seed         int64 // 0 = fixed default seed (see rng.go)
}

// WithPermutations sets the number of random relabelings. Zero keeps the
// method's default (999, or 99 for rtest); negative values are rejected
// by Test with ErrBadPermutations.
func WithPermutations(n int) Option {
	return func(o *options) { o.permutations = n }
}

// WithSeed fixes the RNG seed. Seed 0 selects a stable package default,
// so the zero value is still deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}
