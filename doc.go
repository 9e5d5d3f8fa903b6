// Package elastica turns strained-structure simulation results into the
// elastic tensor of a crystalline material, plus the isotropic constants
// derived from it.
//
// 🚀 What is elastica?
//
//	A pure in-memory numerical library that brings together:
//		• Voigt algebra: 6x6 ↔ 3x3x3x3 tensor conversion and re-orientation
//		• Symmetry reduction: deduplication of point-group rotation sets
//		• Strain sampling: randomized symmetric strain design-of-experiments
//		• Linear fitting: stress- or energy-based least-squares recovery of
//		  the 6x6 elastic tensor with per-component fit scores
//		• Moduli: bulk/shear/Young's modulus, Poisson's and Zener ratios
//		• A thin orchestration boundary for batch or interactive collection
//
// ✨ Why choose elastica?
//
//   - Deterministic – explicit seeds, fixed loop orders, no global state
//   - Side-effect-free core – plain inputs in, tensor and score out
//   - Collaborator-agnostic – job scheduling, persistence and symmetry
//     analysis stay behind small interfaces at the boundary
//
// Everything is organized under six subpackages:
//
//	voigt/    — small-tensor types, Voigt index map, tensor rotation
//	symmetry/ — rotation-set reduction to a minimal generating set
//	strain/   — sample sizing and randomized strain generation
//	fit/      — the linear regression engine (stress and energy paths)
//	moduli/   — isotropic elastic constants from the fitted tensor
//	elastic/  — run configuration, result ingestion, output mapping
//
// Typical flow: reduce the structure's rotations, size and generate the
// strain set, hand strained variants to your simulation driver, feed the
// collected results back, read the tensor and constants off the output.
//
//	go get github.com/materialsmath/elastica
package elastica
