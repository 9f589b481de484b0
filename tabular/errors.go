// Package tabular: sentinel error set.
// All operations in this package return these sentinels (possibly wrapped
// with fmt.Errorf("...: %w", err) for context) and tests check them via
// errors.Is. No function panics on user-triggered conditions.

package tabular

import "errors"

var (
	// ErrNoColumns indicates a table (or CSV header) with zero columns.
	ErrNoColumns = errors.New("tabular: table has no columns")

	// ErrNoRows indicates a table with zero observation rows where at
	// least one row is required.
	ErrNoRows = errors.New("tabular: table has no rows")

	// ErrRaggedRow indicates a row whose width differs from the header.
	ErrRaggedRow = errors.New("tabular: ragged row")

	// ErrDuplicateColumn indicates two columns sharing one name.
	ErrDuplicateColumn = errors.New("tabular: duplicate column name")

	// ErrUnknownColumn indicates a referenced column name that the table
	// does not carry.
	ErrUnknownColumn = errors.New("tabular: unknown column")

	// ErrNotNumeric indicates a CSV cell that does not parse as float64.
	ErrNotNumeric = errors.New("tabular: cell is not numeric")

	// ErrGroupLength indicates a grouping vector whose length differs
	// from the table's row count.
	ErrGroupLength = errors.New("tabular: grouping vector length mismatch")

	// ErrEmptyBlock indicates a block that names no columns.
	ErrEmptyBlock = errors.New("tabular: block has no columns")

	// ErrDuplicateBlock indicates two blocks sharing one name.
	ErrDuplicateBlock = errors.New("tabular: duplicate block name")

	// ErrNilTable indicates a nil *Table receiver or argument.
	ErrNilTable = errors.New("tabular: nil table")
)
