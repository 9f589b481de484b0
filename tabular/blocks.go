package tabular

import "fmt"

// Block is one named column subset of a table.
type Block struct {
	// Name tags the block in result frames.
	Name string

	// Columns lists the member column names, in analysis order.
	Columns []string
}

// Blocks is an ordered, named partition (or any covering/overlapping
// family) of a table's columns. Pairwise drivers iterate blocks in slice
// order, which makes result ordering deterministic.
type Blocks []Block

// WholeTableBlock is the block name OneBlock assigns when the caller did
// not partition the columns.
const WholeTableBlock = "all"

// OneBlock wraps every column of t into a single block named
// WholeTableBlock. It is the default partition for un-blocked analyses.
func OneBlock(t *Table) Blocks {
	if t == nil {
		return nil
	}
	return Blocks{{Name: WholeTableBlock, Columns: t.Columns()}}
}

// Validate checks bs against t: block names must be unique and non-empty,
// every block must name at least one column, and every named column must
// exist in t. Overlapping blocks are legal (a column may serve several
// blocks).
//
// Errors: ErrEmptyBlock, ErrDuplicateBlock, ErrUnknownColumn — each
// wrapped with the offending block name.
func (bs Blocks) Validate(t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	seen := make(map[string]struct{}, len(bs))
	for _, b := range bs {
		if b.Name == "" || len(b.Columns) == 0 {
			return fmt.Errorf("block %q: %w", b.Name, ErrEmptyBlock)
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("block %q: %w", b.Name, ErrDuplicateBlock)
		}
		seen[b.Name] = struct{}{}
		for _, c := range b.Columns {
			if t.column(c) < 0 {
				return fmt.Errorf("block %q, column %q: %w", b.Name, c, ErrUnknownColumn)
			}
		}
	}
	return nil
}

// Slice materializes one block of t as its own table.
// It is a thin alias of Table.Select with the block's column list.
func (b Block) Slice(t *Table) (*Table, error) {
	return t.Select(b.Columns...)
}
