// SPDX-License-Identifier: MIT
// Package ordination: sentinel error set. Transforms return these
// sentinels (wrapped with context where useful); tests match via errors.Is.

package ordination

import "errors"

var (
	// ErrUnknownTransform indicates a transform name New does not dispatch.
	ErrUnknownTransform = errors.New("ordination: unknown transform")

	// ErrEmptyMatrix indicates a nil or zero-sized input matrix.
	ErrEmptyMatrix = errors.New("ordination: empty matrix")

	// ErrBadDims indicates a non-positive axis cap passed to WithDims.
	ErrBadDims = errors.New("ordination: dims must be positive")

	// ErrNegativeValue indicates negative data passed to a transform
	// defined on non-negative values (hellinger, log1p).
	ErrNegativeValue = errors.New("ordination: negative value")

	// ErrDecompositionFailed indicates that the underlying gonum
	// factorization (SVD / eigen) did not converge.
	ErrDecompositionFailed = errors.New("ordination: decomposition failed")
)
