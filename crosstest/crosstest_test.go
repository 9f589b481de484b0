package crosstest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bmdistef/ggcor/crosstest"
	"github.com/Bmdistef/ggcor/ordination"
	"github.com/Bmdistef/ggcor/procrustes"
	"github.com/Bmdistef/ggcor/tabular"
)

// fixtures builds paired 8-row spec (4 columns) and env (3 columns)
// tables with deterministic, non-degenerate values.
func fixtures(t *testing.T) (*tabular.Table, *tabular.Table) {
	t.Helper()
	spec, err := tabular.New(
		[]string{"s1", "s2", "s3", "s4"},
		[][]float64{
			{1, 0, 2, 5},
			{2, 1, 1, 4},
			{3, 3, 0, 6},
			{4, 2, 2, 3},
			{5, 5, 1, 7},
			{6, 4, 3, 2},
			{7, 6, 2, 8},
			{8, 5, 4, 1},
		},
	)
	require.NoError(t, err)
	env, err := tabular.New(
		[]string{"ph", "temp", "depth"},
		[][]float64{
			{6.5, 12, 3},
			{6.8, 14, 5},
			{7.0, 11, 2},
			{7.2, 16, 8},
			{6.9, 13, 4},
			{7.4, 18, 9},
			{6.6, 15, 6},
			{7.1, 17, 7},
		},
	)
	require.NoError(t, err)
	return spec, env
}

// fast keeps permutation loops short in unit tests.
func fast() []crosstest.Option {
	return []crosstest.Option{
		crosstest.WithPermutations(49),
		crosstest.WithSeed(11),
	}
}

// TestRun_Defaults runs the un-blocked, un-grouped whole-table pairing.
func TestRun_Defaults(t *testing.T) {
	spec, env := fixtures(t)

	frame, err := crosstest.Run(spec, env, fast()...)
	require.NoError(t, err)
	require.Equal(t, 1, frame.Len(), "one pair: whole spec × whole env")

	row := frame.Rows[0]
	assert.Equal(t, tabular.WholeTableBlock, row.Spec)
	assert.Equal(t, tabular.WholeTableBlock, row.Env)
	assert.Empty(t, row.Group, "ungrouped rows carry the empty label")
	assert.GreaterOrEqual(t, row.Statistic, 0.0)
	assert.LessOrEqual(t, row.Statistic, 1.0+1e-12)
	assert.Greater(t, row.PValue, 0.0)
	assert.LessOrEqual(t, row.PValue, 1.0)
	assert.Equal(t, 49, row.Permutations)
}

// TestRun_BlockCrossProduct verifies pair count and deterministic order
// for a 2×2 block grid.
func TestRun_BlockCrossProduct(t *testing.T) {
	spec, env := fixtures(t)

	opts := append(fast(),
		crosstest.WithSpecBlocks(tabular.Blocks{
			{Name: "early", Columns: []string{"s1", "s2"}},
			{Name: "late", Columns: []string{"s3", "s4"}},
		}),
		crosstest.WithEnvBlocks(tabular.Blocks{
			{Name: "chem", Columns: []string{"ph"}},
			{Name: "phys", Columns: []string{"temp", "depth"}},
		}),
	)
	frame, err := crosstest.Run(spec, env, opts...)
	require.NoError(t, err)
	require.Equal(t, 4, frame.Len())

	order := make([]string, 0, 4)
	for _, r := range frame.Rows {
		order = append(order, r.Spec+"/"+r.Env)
	}
	assert.Equal(t,
		[]string{"early/chem", "early/phys", "late/chem", "late/phys"},
		order, "spec-major, declaration-ordered iteration")
}

// TestRun_Groups verifies the grouped concatenation: every block pair is
// tested once per group, tagged with the group label.
func TestRun_Groups(t *testing.T) {
	spec, env := fixtures(t)
	groups := []string{"north", "north", "north", "north", "south", "south", "south", "south"}

	opts := append(fast(), crosstest.WithGroups(groups))
	frame, err := crosstest.Run(spec, env, opts...)
	require.NoError(t, err)
	require.Equal(t, 2, frame.Len(), "one whole-table pair per group")
	assert.Equal(t, "north", frame.Rows[0].Group, "first-appearance group order")
	assert.Equal(t, "south", frame.Rows[1].Group)
}

// TestRun_GroupTooSmall rejects groups under the procrustes row minimum.
func TestRun_GroupTooSmall(t *testing.T) {
	spec, env := fixtures(t)
	groups := []string{"a", "a", "a", "a", "a", "a", "a", "b"}

	_, err := crosstest.Run(spec, env, append(fast(), crosstest.WithGroups(groups))...)
	require.ErrorIs(t, err, crosstest.ErrGroupTooSmall)
	assert.Contains(t, err.Error(), `"b"`, "error must name the group")
}

// TestRun_GroupLengthMismatch propagates the tabular sentinel.
func TestRun_GroupLengthMismatch(t *testing.T) {
	spec, env := fixtures(t)

	_, err := crosstest.Run(spec, env, crosstest.WithGroups([]string{"a"}))
	assert.ErrorIs(t, err, tabular.ErrGroupLength)
}

// TestRun_RowMismatch rejects unpaired tables.
func TestRun_RowMismatch(t *testing.T) {
	spec, _ := fixtures(t)
	env, err := tabular.New([]string{"x"}, [][]float64{{1}, {2}, {3}})
	require.NoError(t, err)

	_, err = crosstest.Run(spec, env)
	assert.ErrorIs(t, err, crosstest.ErrRowMismatch)
}

// TestRun_BadBlocks propagates block validation sentinels with side context.
func TestRun_BadBlocks(t *testing.T) {
	spec, env := fixtures(t)

	_, err := crosstest.Run(spec, env,
		crosstest.WithSpecBlocks(tabular.Blocks{{Name: "ghost", Columns: []string{"zzz"}}}))
	require.ErrorIs(t, err, tabular.ErrUnknownColumn)
	assert.Contains(t, err.Error(), "spec blocks")

	_, err = crosstest.Run(spec, env,
		crosstest.WithEnvBlocks(tabular.Blocks{{Name: "empty"}}))
	assert.ErrorIs(t, err, tabular.ErrEmptyBlock)
}

// TestRun_UnknownTransform propagates the ordination sentinel.
func TestRun_UnknownTransform(t *testing.T) {
	spec, env := fixtures(t)

	_, err := crosstest.Run(spec, env, crosstest.WithSpecPre("nmds"))
	assert.ErrorIs(t, err, ordination.ErrUnknownTransform)
}

// TestRun_UnknownMethod propagates the procrustes sentinel.
func TestRun_UnknownMethod(t *testing.T) {
	spec, env := fixtures(t)

	_, err := crosstest.Run(spec, env, append(fast(), crosstest.WithMethod("mantel"))...)
	assert.ErrorIs(t, err, procrustes.ErrUnknownMethod)
}

// TestRun_PreTransforms runs hellinger × scale with a PCA reduction and
// checks the pipeline holds together end to end.
func TestRun_PreTransforms(t *testing.T) {
	spec, env := fixtures(t)

	opts := append(fast(),
		crosstest.WithSpecPre("hellinger"),
		crosstest.WithEnvPre("pca", ordination.WithDims(2)),
		crosstest.WithMethod(procrustes.MethodRandtest),
	)
	frame, err := crosstest.Run(spec, env, opts...)
	require.NoError(t, err)
	require.Equal(t, 1, frame.Len())
	assert.Greater(t, frame.Rows[0].Statistic, 0.0)
}

// TestRun_Deterministic verifies frame-level reproducibility under a seed.
func TestRun_Deterministic(t *testing.T) {
	spec, env := fixtures(t)

	a, err := crosstest.Run(spec, env, fast()...)
	require.NoError(t, err)
	b, err := crosstest.Run(spec, env, fast()...)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same inputs and seed must reproduce the frame")
}

// TestFrame_WriteCSV round-trips the tidy frame through encoding/csv.
func TestFrame_WriteCSV(t *testing.T) {
	spec, env := fixtures(t)

	frame, err := crosstest.Run(spec, env, fast()...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, frame.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+frame.Len())
	assert.Equal(t, "spec,env,group,r,p_value,permutations", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "all,all,,"), "default block names and empty group")
}
