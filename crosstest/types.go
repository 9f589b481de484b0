package crosstest

import "errors"

// Row is one tidy result: a single procrustes test between one spec
// block and one env block, within one group (empty Group means the whole
// table was analysed unsplit).
type Row struct {
	Spec         string  // spec block name
	Env          string  // env block name
	Group        string  // group label, "" when ungrouped
	Statistic    float64 // procrustes correlation
	PValue       float64 // permutation p-value
	Permutations int
}

// Frame is the concatenated tidy output of one Run call.
type Frame struct {
	Rows []Row
}

var (
	// ErrRowMismatch indicates spec and env tables with different row
	// counts; paired analyses require matching observations.
	ErrRowMismatch = errors.New("crosstest: spec/env row count mismatch")

	// ErrGroupTooSmall indicates a group left with fewer rows than the
	// procrustes minimum; it is wrapped with the group label.
	ErrGroupTooSmall = errors.New("crosstest: group has too few rows")
)
