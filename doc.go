// Package ggcor compares paired multivariate tables with procrustes
// rotation tests and returns the results as one tidy table.
//
// 🚀 What is ggcor?
//
//	A small, deterministic library that takes two matching observation
//	tables (species abundances vs. environmental measurements, assay
//	panels vs. covariates, …), optionally partitions their columns into
//	named blocks, optionally ordinates each block, then runs a chosen
//	procrustes-test variant on every spec-block × env-block pair:
//	  • tabular/     — named-column numeric tables, CSV I/O, blocks, grouping
//	  • ordination/  — pre-transforms: scale, hellinger, log1p, pca, pcoa
//	  • procrustes/  — protest / randtest / rtest significance tests
//	  • crosstest/   — the pairwise driver producing the tidy result frame
//
// ✨ Why choose ggcor?
//
//   - Deterministic – every permutation draw flows from an explicit seed
//   - Strict sentinels – all failures match via errors.Is, no panics
//   - Thin by design – linear algebra is delegated to gonum, not re-invented
//   - Tidy output – one row per block pair, ready for CSV or plotting
//
// Quick sketch:
//
//	spec, _ := tabular.FromCSV(specFile)
//	env, _ := tabular.FromCSV(envFile)
//	frame, err := crosstest.Run(spec, env,
//	  crosstest.WithSpecPre("hellinger"),
//	  crosstest.WithEnvPre("scale"),
//	  crosstest.WithMethod(procrustes.MethodProtest),
//	)
//	frame.WriteCSV(os.Stdout)
//
// The cmd/ggcor command wraps the same pipeline behind a TOML config.
//
//	go get github.com/Bmdistef/ggcor
package ggcor
