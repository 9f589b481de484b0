package tabular

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Table is a rectangular named-column float64 data set.
//
// Invariants (enforced by constructors, relied upon everywhere else):
//   - column names are unique and non-empty,
//   - every row has exactly len(names) values,
//   - data is stored row-major in a single flat slice.
//
// A Table is not mutated by any operation in this module; derived tables
// (Select, SplitBy) copy the values they need.
type Table struct {
	names []string  // column names, unique
	data  []float64 // row-major, len == rows*len(names)
	rows  int
}

// New builds a Table from column names and observation rows.
//
// Errors:
//   - ErrNoColumns when names is empty.
//   - ErrDuplicateColumn when two names collide (wrapped with the name).
//   - ErrRaggedRow when any row's width differs from len(names)
//     (wrapped with the offending row index).
//
// Complexity: O(rows·cols) copy.
func New(names []string, rows [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if err := checkUnique(names); err != nil {
		return nil, err
	}
	t := &Table{
		names: append([]string(nil), names...),
		data:  make([]float64, 0, len(rows)*len(names)),
		rows:  len(rows),
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), len(names), ErrRaggedRow)
		}
		t.data = append(t.data, row...)
	}
	return t, nil
}

// checkUnique returns ErrDuplicateColumn (wrapped with the name) when names
// contains a repeat, and nil otherwise.
func checkUnique(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("column %q: %w", n, ErrDuplicateColumn)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// Rows reports the number of observation rows.
func (t *Table) Rows() int { return t.rows }

// Cols reports the number of columns.
func (t *Table) Cols() int { return len(t.names) }

// Columns returns a copy of the column names in table order.
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// At returns the value at row i, column j. Panics on out-of-range indices,
// matching the access contract of gonum matrices.
func (t *Table) At(i, j int) float64 { return t.data[i*len(t.names)+j] }

// column returns the index of the named column, or -1.
func (t *Table) column(name string) int {
	for j, n := range t.names {
		if n == name {
			return j
		}
	}
	return -1
}

// Select returns a new table holding the named columns, in request order.
//
// Errors:
//   - ErrNoColumns when names is empty.
//   - ErrUnknownColumn (wrapped with the name) when a column is missing.
//   - ErrDuplicateColumn when the request names a column twice.
//
// Complexity: O(rows·len(names)) copy.
func (t *Table) Select(names ...string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if err := checkUnique(names); err != nil {
		return nil, err
	}
	idx := make([]int, len(names))
	for k, n := range names {
		j := t.column(n)
		if j < 0 {
			return nil, fmt.Errorf("column %q: %w", n, ErrUnknownColumn)
		}
		idx[k] = j
	}
	out := &Table{
		names: append([]string(nil), names...),
		data:  make([]float64, 0, t.rows*len(names)),
		rows:  t.rows,
	}
	for i := 0; i < t.rows; i++ {
		base := i * len(t.names)
		for _, j := range idx {
			out.data = append(out.data, t.data[base+j])
		}
	}
	return out, nil
}

// Dense exports the table values as a fresh gonum *mat.Dense (rows×cols).
// The result shares no storage with the table. A table with zero rows
// yields nil, since gonum refuses empty matrices.
func (t *Table) Dense() *mat.Dense {
	if t == nil || t.rows == 0 || len(t.names) == 0 {
		return nil
	}
	return mat.NewDense(t.rows, len(t.names), append([]float64(nil), t.data...))
}

// Group is one slice of a grouped table: the group's label and the rows
// that carry it, in their original relative order.
type Group struct {
	Label string
	Table *Table
}

// SplitBy partitions the table's rows by a grouping vector. Groups appear
// in first-appearance order of their label; within a group, rows keep the
// order they had in t.
//
// Errors:
//   - ErrGroupLength when len(groups) != t.Rows().
//
// Complexity: O(rows·cols).
func (t *Table) SplitBy(groups []string) ([]Group, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if len(groups) != t.rows {
		return nil, fmt.Errorf("got %d labels for %d rows: %w", len(groups), t.rows, ErrGroupLength)
	}
	order := make([]string, 0)
	byLabel := make(map[string][]int)
	for i, g := range groups {
		if _, ok := byLabel[g]; !ok {
			order = append(order, g)
		}
		byLabel[g] = append(byLabel[g], i)
	}
	out := make([]Group, 0, len(order))
	for _, label := range order {
		idx := byLabel[label]
		sub := &Table{
			names: append([]string(nil), t.names...),
			data:  make([]float64, 0, len(idx)*len(t.names)),
			rows:  len(idx),
		}
		for _, i := range idx {
			base := i * len(t.names)
			sub.data = append(sub.data, t.data[base:base+len(t.names)]...)
		}
		out = append(out, Group{Label: label, Table: sub})
	}
	return out, nil
}
