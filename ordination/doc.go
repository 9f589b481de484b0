// SPDX-License-Identifier: MIT

// Package ordination provides the pre-transforms a block can pass through
// before a procrustes comparison, resolved by name.
//
// 🚀 What is ordination?
//
//	Community and measurement tables are rarely compared raw: abundances
//	get a hellinger or log transform, covariates get z-scored, and
//	high-dimensional blocks get reduced to a handful of ordination axes
//	first. This package packages those steps as a single dispatch:
//	  • "none"      — identity
//	  • "scale"     — column z-score (constant columns become zero)
//	  • "hellinger" — row-proportion square roots (non-negative data)
//	  • "log1p"     — elementwise log(1+x) (non-negative data)
//	  • "pca"       — principal component scores (gonum stat.PC)
//	  • "pcoa"      — classical metric MDS on Euclidean distances
//	    (double-centered Gower matrix, gonum mat.EigenSym)
//
// Non-metric MDS is intentionally absent: it is an external numerical
// responsibility this module does not re-implement, and no Go library in
// the ecosystem provides it. Requesting "nmds" yields ErrUnknownTransform.
//
// ⚙️ Usage:
//
//	pre, err := ordination.New("pca", ordination.WithDims(2))
//	scores, err := pre(block) // block is a *mat.Dense
//
// All numerics are delegated to gonum; this package only composes.
package ordination
