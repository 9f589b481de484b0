// SPDX-License-Identifier: MIT
// Package procrustes - unified dispatcher and the shared statistic kernel.
//
// This file provides the canonical entry point:
//
//   - Test: validate the two configurations, route to the requested
//     variant (protest / randtest / rtest), run the permutation loop and
//     assemble the Result.
//
// Design principles:
//   - Deterministic: seed routing via rng.go; no time-based randomness.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Thin numerics: centering and inertia scaling are simple loops; the
//     rotation itself is gonum's SVD of the crossproduct.

package procrustes

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// permuteFirst reports whether the given method relabels the rows of the
// first configuration (protest) or the second (randtest, rtest).
func permuteFirst(method string) bool { return method == MethodProtest }

// Test runs the procrustes significance test named by method on the
// paired configurations x (n×p) and y (n×q).
//
// Contracts:
//   - x and y must be non-nil with equal row counts and n ≥ MinRows.
//   - Columns may differ; the statistic uses min(p, q) singular values.
//
// Errors: ErrUnknownMethod, ErrNilConfiguration, ErrRowMismatch,
// ErrTooFewRows, ErrBadPermutations, ErrConstantConfiguration,
// ErrDecompositionFailed.
//
// Complexity: O(perm · (n·p·q + min(p,q)³)) — one crossproduct + SVD per
// relabeling.
func Test(method string, x, y *mat.Dense, opts ...Option) (Result, error) {
	switch method {
	case MethodProtest, MethodRandtest, MethodRtest:
	default:
		return Result{}, ErrUnknownMethod
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	perms := o.permutations
	if perms == 0 {
		perms = DefaultPermutations
		if method == MethodRtest {
			perms = DefaultRtestPermutations
		}
	}
	if perms < 0 {
		return Result{}, ErrBadPermutations
	}

	if x == nil || y == nil {
		return Result{}, ErrNilConfiguration
	}
	nx, _ := x.Dims()
	ny, _ := y.Dims()
	if nx != ny {
		return Result{}, ErrRowMismatch
	}
	if nx < MinRows {
		return Result{}, ErrTooFewRows
	}

	// Center and scale each configuration to unit total inertia once;
	// row permutations leave both properties intact, so the loop below
	// only shuffles rows.
	xn, err := normalize(x)
	if err != nil {
		return Result{}, err
	}
	yn, err := normalize(y)
	if err != nil {
		return Result{}, err
	}

	obs, err := correlation(xn, yn)
	if err != nil {
		return Result{}, err
	}

	rng, seed := rngFromSeed(o.seed)
	hits, err := permutationHits(rng, xn, yn, obs, perms, permuteFirst(method))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Method:       method,
		Statistic:    obs,
		PValue:       float64(hits+1) / float64(perms+1),
		Permutations: perms,
		Seed:         seed,
	}, nil
}

// normalize returns a centered copy of x scaled to unit total inertia
// (Frobenius norm 1). ErrConstantConfiguration when the centered matrix
// is identically zero.
func normalize(x *mat.Dense) (*mat.Dense, error) {
	n, d := x.Dims()
	out := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		mean := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			out.Set(i, j, col[i]-mean)
		}
	}
	ss := mat.Norm(out, 2) // Frobenius
	if ss == 0 || math.IsNaN(ss) {
		return nil, ErrConstantConfiguration
	}
	out.Scale(1/ss, out)
	return out, nil
}

// correlation computes the procrustes correlation of two centered,
// unit-inertia configurations: the trace of the singular values of yᵀx.
// By Cauchy–Schwarz the value lies in [0, 1].
func correlation(x, y *mat.Dense) (float64, error) {
	var c mat.Dense
	c.Mul(y.T(), x)
	var svd mat.SVD
	if !svd.Factorize(&c, mat.SVDNone) {
		return 0, ErrDecompositionFailed
	}
	sum := 0.0
	for _, s := range svd.Values(nil) {
		sum += s
	}
	return sum, nil
}

// permutationHits draws perm row relabelings and counts statistics that
// reach the observed one. first selects which configuration is shuffled.
func permutationHits(rng *rand.Rand, x, y *mat.Dense, obs float64, perm int, first bool) (int, error) {
	n, _ := x.Dims()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	target := y
	if first {
		target = x
	}
	_, d := target.Dims()
	scratch := mat.NewDense(n, d, nil)

	hits := 0
	for p := 0; p < perm; p++ {
		rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		for i, src := range idx {
			scratch.SetRow(i, target.RawRowView(src))
		}
		var (
			r   float64
			err error
		)
		if first {
			r, err = correlation(scratch, y)
		} else {
			r, err = correlation(x, scratch)
		}
		if err != nil {
			return 0, err
		}
		if r >= obs {
			hits++
		}
	}
	return hits, nil
}
