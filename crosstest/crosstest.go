// Package crosstest - the pairwise driver.
//
// Run validates inputs once, then walks groups × spec blocks × env blocks
// in deterministic order, delegating every numerical step: pre-transforms
// to ordination, the statistic and its significance to procrustes.

package crosstest

import (
	"fmt"

	"github.com/Bmdistef/ggcor/ordination"
	"github.com/Bmdistef/ggcor/procrustes"
	"github.com/Bmdistef/ggcor/tabular"
)

// Run executes the chosen procrustes variant on every spec-block ×
// env-block pair of the two tables and returns the tidy result frame.
//
// Contracts:
//   - spec and env must be non-nil with equal row counts.
//   - Block definitions (when given) must validate against their table.
//   - The grouping vector (when given) must have one label per row; each
//     group needs at least procrustes.MinRows rows.
//
// Errors: tabular.ErrNilTable, ErrRowMismatch, block validation errors
// from tabular, ordination.ErrUnknownTransform, ErrGroupTooSmall (wrapped
// with the group label), and every procrustes sentinel — all matching via
// errors.Is.
func Run(spec, env *tabular.Table, opts ...Option) (Frame, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1 - validation.
	if spec == nil || env == nil {
		return Frame{}, tabular.ErrNilTable
	}
	if spec.Rows() != env.Rows() {
		return Frame{}, fmt.Errorf("spec has %d rows, env has %d: %w", spec.Rows(), env.Rows(), ErrRowMismatch)
	}

	specBlocks := o.specBlocks
	if specBlocks == nil {
		specBlocks = tabular.OneBlock(spec)
	}
	envBlocks := o.envBlocks
	if envBlocks == nil {
		envBlocks = tabular.OneBlock(env)
	}
	if err := specBlocks.Validate(spec); err != nil {
		return Frame{}, fmt.Errorf("spec blocks: %w", err)
	}
	if err := envBlocks.Validate(env); err != nil {
		return Frame{}, fmt.Errorf("env blocks: %w", err)
	}

	specPre, err := ordination.New(o.specPre.name, o.specPre.opts...)
	if err != nil {
		return Frame{}, fmt.Errorf("spec pre-transform: %w", err)
	}
	envPre, err := ordination.New(o.envPre.name, o.envPre.opts...)
	if err != nil {
		return Frame{}, fmt.Errorf("env pre-transform: %w", err)
	}

	method := o.method
	if method == "" {
		method = DefaultMethod
	}

	// Stage 2 - optional group split. Both tables split by the same
	// vector, so group g holds the same observations on both sides.
	type part struct {
		label string
		spec  *tabular.Table
		env   *tabular.Table
	}
	parts := []part{{label: "", spec: spec, env: env}}
	if o.groups != nil {
		sg, err := spec.SplitBy(o.groups)
		if err != nil {
			return Frame{}, err
		}
		eg, err := env.SplitBy(o.groups)
		if err != nil {
			return Frame{}, err
		}
		parts = parts[:0]
		for i := range sg {
			if sg[i].Table.Rows() < procrustes.MinRows {
				return Frame{}, fmt.Errorf("group %q has %d rows: %w", sg[i].Label, sg[i].Table.Rows(), ErrGroupTooSmall)
			}
			parts = append(parts, part{label: sg[i].Label, spec: sg[i].Table, env: eg[i].Table})
		}
	}

	// Stage 3 - the cross product. Every test starts from the same seed
	// option, so block pairs are independent of each other.
	frame := Frame{Rows: make([]Row, 0, len(parts)*len(specBlocks)*len(envBlocks))}
	for _, sl := range parts {
		for _, sb := range specBlocks {
			st, err := sb.Slice(sl.spec)
			if err != nil {
				return Frame{}, err
			}
			sx, err := specPre(st.Dense())
			if err != nil {
				return Frame{}, fmt.Errorf("spec block %q: %w", sb.Name, err)
			}
			for _, eb := range envBlocks {
				et, err := eb.Slice(sl.env)
				if err != nil {
					return Frame{}, err
				}
				ey, err := envPre(et.Dense())
				if err != nil {
					return Frame{}, fmt.Errorf("env block %q: %w", eb.Name, err)
				}
				res, err := procrustes.Test(method, sx, ey, o.testOpts...)
				if err != nil {
					return Frame{}, fmt.Errorf("%s × %s: %w", sb.Name, eb.Name, err)
				}
				frame.Rows = append(frame.Rows, Row{
					Spec:         sb.Name,
					Env:          eb.Name,
					Group:        sl.label,
					Statistic:    res.Statistic,
					PValue:       res.PValue,
					Permutations: res.Permutations,
				})
			}
		}
	}
	return frame, nil
}
