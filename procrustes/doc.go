// SPDX-License-Identifier: MIT

// Package procrustes runs rotational-fit significance tests between two
// multivariate configurations.
//
// 🚀 What is a procrustes test?
//
//	Given two configurations X (n×p) and Y (n×q) describing the same n
//	observations, procrustes analysis finds the rotation superimposing
//	one onto the other and summarizes the fit as a correlation-like
//	statistic in [0, 1]. Significance comes from comparing the observed
//	statistic against its distribution under random row relabelings.
//
// Three classic variants are exposed behind one string dispatch, matching
// the conventions of the R functions they mirror:
//
//   - MethodProtest ("protest")  — symmetric procrustes correlation;
//     permutes the rows of the first configuration; 999 permutations.
//   - MethodRandtest ("randtest") — Monte-Carlo procrustean correlation;
//     permutes the rows of the second configuration; 999 draws.
//   - MethodRtest ("rtest")      — the legacy row-permutation variant of
//     the same statistic; 99 permutations.
//
// All three share one kernel: center the configurations, scale each to
// unit total inertia, and take the trace of the singular values of YᵀX
// (gonum mat.SVD). The p-value uses the standard permutation convention
// (#{perm ≥ observed} + 1) / (permutations + 1), so it is never zero.
//
// ⚙️ Usage:
//
//	res, err := procrustes.Test(procrustes.MethodProtest, x, y,
//	  procrustes.WithPermutations(1999),
//	  procrustes.WithSeed(42),
//	)
//	fmt.Println(res.Statistic, res.PValue)
//
// Determinism: every permutation draw flows from the seed option
// (seed 0 selects a fixed default), so identical inputs and options give
// identical results across runs and platforms.
package procrustes
