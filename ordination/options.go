// SPDX-License-Identifier: MIT
// Package ordination: functional configuration for transform construction.

package ordination

// DefaultDims is the axis cap used when the caller does not set one.
// Zero means "keep every available axis".
const DefaultDims = 0

// Option mutates transform construction state. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	dims int // 0 = keep all axes; otherwise cap pca/pcoa output columns
}

func defaultOptions() options {
	return options{dims: DefaultDims}
}

// WithDims caps the number of axes "pca" and "pcoa" retain. Transforms
// that do not reduce dimensionality ignore the cap. New validates k at
// construction time and returns ErrBadDims for k < 1.
func WithDims(k int) Option {
	return func(o *options) { o.dims = k }
}
