// SPDX-License-Identifier: MIT
// Package ordination: transform construction and the transform kernels.
//
// Purpose:
//   - Resolve a transform by name (the wrapper dispatches on strings, so
//     the names are part of the public contract).
//   - Keep every kernel a thin composition over gonum; no numerical
//     algorithm is re-implemented here.
//
// Determinism:
//   - No randomness anywhere in this package. Eigen/SVD results come from
//     gonum and are stable for identical inputs.

package ordination

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Canonical transform names accepted by New.
const (
	TransformNone      = "none"
	TransformScale     = "scale"
	TransformHellinger = "hellinger"
	TransformLog1p     = "log1p"
	TransformPCA       = "pca"
	TransformPCoA      = "pcoa"
)

// eigTol is the relative threshold under which a PCoA eigenvalue is
// treated as zero (numerical noise or a negative Gower axis).
const eigTol = 1e-9

// Transform maps one block configuration to another. Implementations
// never mutate the input matrix.
type Transform func(x *mat.Dense) (*mat.Dense, error)

// New resolves name to a Transform.
//
// Errors:
//   - ErrUnknownTransform (wrapped with the name) for names not listed in
//     the package doc — including "nmds", which is deliberately absent.
//   - ErrBadDims when WithDims was given k < 1.
//
// Complexity: O(1); the returned Transform carries its own cost.
func New(name string, opts ...Option) (Transform, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.dims != DefaultDims && o.dims < 1 {
		return nil, fmt.Errorf("dims %d: %w", o.dims, ErrBadDims)
	}

	switch name {
	case TransformNone, "":
		return identity, nil
	case TransformScale:
		return scaleColumns, nil
	case TransformHellinger:
		return hellinger, nil
	case TransformLog1p:
		return log1p, nil
	case TransformPCA:
		return pcaScores(o.dims), nil
	case TransformPCoA:
		return pcoaScores(o.dims), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTransform)
	}
}

// validate rejects nil and zero-sized matrices with ErrEmptyMatrix.
func validate(x *mat.Dense) error {
	if x == nil {
		return ErrEmptyMatrix
	}
	if r, c := x.Dims(); r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	return nil
}

// identity returns the input untouched. The shared no-op for "none".
func identity(x *mat.Dense) (*mat.Dense, error) {
	if err := validate(x); err != nil {
		return nil, err
	}
	return x, nil
}

// scaleColumns z-scores every column: (x - mean) / sd, with the sample
// standard deviation. A constant column (sd == 0) is mapped to zeros
// rather than NaN, so downstream crossproducts stay finite.
func scaleColumns(x *mat.Dense) (*mat.Dense, error) {
	if err := validate(x); err != nil {
		return nil, err
	}
	n, d := x.Dims()
	out := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		mean, sd := stat.MeanStdDev(col, nil)
		for i := 0; i < n; i++ {
			if sd == 0 || math.IsNaN(sd) {
				out.Set(i, j, 0)
				continue
			}
			out.Set(i, j, (col[i]-mean)/sd)
		}
	}
	return out, nil
}

// hellinger maps abundances to square roots of row proportions:
// sqrt(x[i,j] / rowsum(i)). Rows summing to zero become zero rows.
//
// Errors: ErrNegativeValue (wrapped with the cell position) — the
// transform is defined on non-negative data only.
func hellinger(x *mat.Dense) (*mat.Dense, error) {
	if err := validate(x); err != nil {
		return nil, err
	}
	n, d := x.Dims()
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		sum := 0.0
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("row %d, column %d: %w", i, j, ErrNegativeValue)
			}
			sum += v
		}
		if sum == 0 {
			continue // zero row stays zero
		}
		for j, v := range row {
			out.Set(i, j, math.Sqrt(v/sum))
		}
	}
	return out, nil
}

// log1p applies log(1+x) elementwise to non-negative data.
//
// Errors: ErrNegativeValue (wrapped with the cell position).
func log1p(x *mat.Dense) (*mat.Dense, error) {
	if err := validate(x); err != nil {
		return nil, err
	}
	n, d := x.Dims()
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			v := x.At(i, j)
			if v < 0 {
				return nil, fmt.Errorf("row %d, column %d: %w", i, j, ErrNegativeValue)
			}
			out.Set(i, j, math.Log1p(v))
		}
	}
	return out, nil
}

// centerColumns subtracts the per-column mean. Shared by the score
// projections below; procrustes re-centers anyway, this keeps scores
// conventional.
func centerColumns(x *mat.Dense) *mat.Dense {
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
	return out
}

// pcaScores projects the data onto its principal components
// (gonum stat.PC). With k == DefaultDims every available axis is kept;
// otherwise the leading min(k, available) axes.
func pcaScores(k int) Transform {
	return func(x *mat.Dense) (*mat.Dense, error) {
		if err := validate(x); err != nil {
			return nil, err
		}
		_, d := x.Dims()
		var pc stat.PC
		if !pc.PrincipalComponents(x, nil) {
			return nil, fmt.Errorf("pca: %w", ErrDecompositionFailed)
		}
		var vec mat.Dense
		pc.VectorsTo(&vec)
		_, avail := vec.Dims()
		keep := avail
		if k != DefaultDims && k < keep {
			keep = k
		}
		var scores mat.Dense
		scores.Mul(centerColumns(x), vec.Slice(0, d, 0, keep))
		return &scores, nil
	}
}

// pcoaScores runs classical (metric) multidimensional scaling on the
// Euclidean inter-row distances: double-center the squared distance
// matrix (Gower) and eigendecompose it with gonum mat.EigenSym. Axes
// with non-positive eigenvalues are dropped; with k == DefaultDims every
// positive axis is kept.
//
// A fully degenerate input (all rows identical) yields a single zero
// axis; the procrustes layer rejects such configurations itself.
func pcoaScores(k int) Transform {
	return func(x *mat.Dense) (*mat.Dense, error) {
		if err := validate(x); err != nil {
			return nil, err
		}
		n, _ := x.Dims()

		// Squared Euclidean distances between rows (gonum floats).
		d2 := make([][]float64, n)
		for i := range d2 {
			d2[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dist := floats.Distance(x.RawRowView(i), x.RawRowView(j), 2)
				d2[i][j] = dist * dist
				d2[j][i] = d2[i][j]
			}
		}

		// Gower double-centering: b = -1/2 (d2 - rowMean - colMean + grand).
		rowMean := make([]float64, n)
		grand := 0.0
		for i := 0; i < n; i++ {
			rowMean[i] = stat.Mean(d2[i], nil)
			grand += rowMean[i]
		}
		grand /= float64(n)
		b := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				b.SetSym(i, j, -0.5*(d2[i][j]-rowMean[i]-rowMean[j]+grand))
			}
		}

		var eig mat.EigenSym
		if !eig.Factorize(b, true) {
			return nil, fmt.Errorf("pcoa: %w", ErrDecompositionFailed)
		}
		vals := eig.Values(nil) // ascending order
		var vecs mat.Dense
		eig.VectorsTo(&vecs)

		// Keep positive axes, largest first.
		tol := eigTol * math.Abs(vals[n-1])
		keep := make([]int, 0, n)
		for c := n - 1; c >= 0; c-- {
			if vals[c] <= tol {
				break
			}
			keep = append(keep, c)
			if k != DefaultDims && len(keep) == k {
				break
			}
		}
		if len(keep) == 0 {
			return mat.NewDense(n, 1, nil), nil
		}
		out := mat.NewDense(n, len(keep), nil)
		for a, c := range keep {
			scale := math.Sqrt(vals[c])
			for i := 0; i < n; i++ {
				out.Set(i, a, vecs.At(i, c)*scale)
			}
		}
		return out, nil
	}
}
