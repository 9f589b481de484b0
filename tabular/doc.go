// Package tabular holds named-column numeric tables and the small set of
// reshaping operations the procrustes pipeline needs: column selection,
// named column blocks, and row grouping.
//
// 🚀 What is tabular?
//
//	A Table is a rectangular float64 data set with a header: every column
//	has a unique name, every row the same width. Tables are built either
//	directly from values (New) or parsed from CSV (FromCSV). On top of
//	that the package provides:
//	  • Select     — column-subset tables, in the requested order
//	  • Blocks     — ordered, named column partitions for pairwise analyses
//	  • SplitBy    — partition rows by a grouping vector, order-preserving
//	  • Dense      — export to a gonum *mat.Dense for numerical work
//
// ⚙️ Usage:
//
//	t, err := tabular.FromCSV(file)
//	left, err := t.Select("ph", "nitrate")
//	groups, err := t.SplitBy(labels)
//	m := t.Dense()
//
// Errors are strict sentinels (ErrUnknownColumn, ErrGroupLength, …) and
// always match via errors.Is. No function in this package panics on user
// input.
package tabular
