// SPDX-License-Identifier: MIT

package procrustes

import "errors"

// Method names accepted by Test. The strings are part of the public
// contract: callers (and config files) dispatch on them.
const (
	// MethodProtest is the symmetric procrustes correlation with a
	// row-permutation test on the first configuration.
	MethodProtest = "protest"

	// MethodRandtest is the Monte-Carlo procrustean correlation with
	// row draws on the second configuration.
	MethodRandtest = "randtest"

	// MethodRtest is the legacy row-permutation variant (99 permutations
	// by default).
	MethodRtest = "rtest"
)

// Result holds the outcome of one procrustes significance test.
type Result struct {
	// Method is the dispatched variant name (one of the Method* constants).
	Method string

	// Statistic is the procrustes correlation of the observed pairing,
	// in [0, 1]; 1 means the configurations match under rotation.
	Statistic float64

	// PValue is the permutation p-value in (0, 1].
	PValue float64

	// Permutations is the number of random relabelings actually drawn.
	Permutations int

	// Seed is the effective RNG seed (after default substitution), kept
	// so results can be reproduced exactly.
	Seed int64
}

var (
	// ErrUnknownMethod indicates a method name Test does not dispatch.
	ErrUnknownMethod = errors.New("procrustes: unknown method")

	// ErrNilConfiguration indicates a nil input matrix.
	ErrNilConfiguration = errors.New("procrustes: nil configuration")

	// ErrRowMismatch indicates configurations with different row counts.
	ErrRowMismatch = errors.New("procrustes: row count mismatch")

	// ErrTooFewRows indicates fewer than MinRows observations; the
	// permutation distribution is meaningless below that.
	ErrTooFewRows = errors.New("procrustes: too few rows")

	// ErrBadPermutations indicates a non-positive permutation count.
	ErrBadPermutations = errors.New("procrustes: permutations must be positive")

	// ErrConstantConfiguration indicates a configuration with zero total
	// inertia after centering (all rows identical); no rotation is defined.
	ErrConstantConfiguration = errors.New("procrustes: constant configuration")

	// ErrDecompositionFailed indicates that the gonum SVD of the
	// crossproduct did not converge.
	ErrDecompositionFailed = errors.New("procrustes: svd failed")
)
