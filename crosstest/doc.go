// Package crosstest drives procrustes tests across every pair of named
// column blocks of two matching tables and collects the results into one
// tidy frame.
//
// 🚀 What is crosstest?
//
//	The convenience layer this module exists for. Given a spec table and
//	an env table over the same observations, Run will:
//	  1. validate the pairing (row counts, block definitions, groups),
//	  2. optionally split the rows by a grouping vector — each group is
//	     analysed independently,
//	  3. for every spec-block × env-block pair, pre-transform each side
//	     (ordination package) and dispatch the chosen procrustes variant,
//	  4. append one tidy Row per pair: block names, group label,
//	     correlation statistic, p-value.
//
// ⚙️ Usage:
//
//	frame, err := crosstest.Run(spec, env,
//	  crosstest.WithSpecBlocks(tabular.Blocks{
//	    {Name: "bacteria", Columns: []string{"b1", "b2", "b3"}},
//	    {Name: "fungi", Columns: []string{"f1", "f2"}},
//	  }),
//	  crosstest.WithSpecPre("hellinger"),
//	  crosstest.WithEnvPre("scale"),
//	  crosstest.WithGroups(site),
//	)
//	frame.WriteCSV(os.Stdout)
//
// Row order is deterministic: groups in first-appearance order, then
// spec blocks, then env blocks, each in declaration order. With the same
// seed, a rerun reproduces the frame bit for bit.
//
// There is no numerical algorithm here — the statistic and its
// significance test live in the procrustes package, the pre-transforms in
// ordination. crosstest only validates, iterates and reshapes.
package crosstest
