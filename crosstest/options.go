// Package crosstest: functional configuration for Run.

package crosstest

import (
	"github.com/Bmdistef/ggcor/ordination"
	"github.com/Bmdistef/ggcor/procrustes"
	"github.com/Bmdistef/ggcor/tabular"
)

// DefaultMethod is the procrustes variant Run dispatches when the caller
// does not choose one.
const DefaultMethod = procrustes.MethodProtest

// Option mutates run configuration. Safe to apply repeatedly.
type Option func(*options)

type preSpec struct {
	name string
	opts []ordination.Option
}

type options struct {
	specBlocks tabular.Blocks // nil = OneBlock(spec)
	envBlocks  tabular.Blocks // nil = OneBlock(env)
	specPre    preSpec        // zero value = "none"
	envPre     preSpec
	method     string // "" = DefaultMethod
	groups     []string
	testOpts   []procrustes.Option
}

// WithSpecBlocks partitions the spec table's columns into named blocks.
// Without it the whole table forms one block named tabular.WholeTableBlock.
func WithSpecBlocks(bs tabular.Blocks) Option {
	return func(o *options) { o.specBlocks = bs }
}

// WithEnvBlocks partitions the env table's columns into named blocks.
func WithEnvBlocks(bs tabular.Blocks) Option {
	return func(o *options) { o.envBlocks = bs }
}

// WithSpecPre names the ordination pre-transform applied to every spec
// block before testing ("none", "scale", "hellinger", "log1p", "pca",
// "pcoa"), with its construction options.
func WithSpecPre(name string, opts ...ordination.Option) Option {
	return func(o *options) { o.specPre = preSpec{name: name, opts: opts} }
}

// WithEnvPre names the pre-transform applied to every env block.
func WithEnvPre(name string, opts ...ordination.Option) Option {
	return func(o *options) { o.envPre = preSpec{name: name, opts: opts} }
}

// WithMethod chooses the procrustes variant: procrustes.MethodProtest,
// MethodRandtest or MethodRtest. Unknown names surface as
// procrustes.ErrUnknownMethod from Run.
func WithMethod(method string) Option {
	return func(o *options) { o.method = method }
}

// WithGroups supplies a grouping vector (one label per row). Each group
// is analysed independently and tagged in the output rows. Length is
// validated against the tables by Run.
func WithGroups(groups []string) Option {
	return func(o *options) { o.groups = append([]string(nil), groups...) }
}

// WithPermutations forwards the draw count to every dispatched test.
func WithPermutations(n int) Option {
	return func(o *options) { o.testOpts = append(o.testOpts, procrustes.WithPermutations(n)) }
}

// WithSeed forwards the RNG seed to every dispatched test. Each test in
// the cross product starts from this seed, so adding a block pair never
// changes the result of another.
func WithSeed(seed int64) Option {
	return func(o *options) { o.testOpts = append(o.testOpts, procrustes.WithSeed(seed)) }
}
