// Package elastic is the orchestration boundary of the tensor-fitting
// core: it freezes a run's configuration (strain set, rotation set),
// hands strained structure variants to an external simulation driver,
// ingests the collected results, and exposes the fitted tensor, fit
// score and elastic constants as a flat output mapping.
//
// The package deliberately owns no scheduling, persistence, or
// simulation logic; those live with the caller. Its contract:
//
//	cfg := elastic.DefaultConfig()
//	cfg.Seed = 7
//	run, err := elastic.NewRun(cfg, symmetrySource) // freezes strains + rotations
//	variants := run.Variants(referenceStructure)    // (index, strained structure)
//	// ... caller simulates each variant, in any order ...
//	out, err := run.Collect(elastic.BatchResults{Children: snapshots})
//	c, err := run.TensorInOrientation(voigt.Mat3{{1,1,1},{-1,0,1},{1,-2,1}})
//
// Results arrive either as one aggregate list (BatchResults, one
// snapshot per child, any completion order) or streamed incrementally
// (InteractiveResults, the latest state snapshot of a single child);
// both reduce to the same per-sample arrays before fitting. Collect
// runs exactly once per run; the output mapping is never mutated after.
package elastic
