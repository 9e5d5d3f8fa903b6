// Package strain sizes and generates the randomized strain samples
// applied to a reference structure before simulation.
//
// Sampling is a design-of-experiments step: each sample is a small
// symmetric 3x3 deformation drawn uniformly around zero, and the sample
// count is chosen so that, once multiplied by the symmetry-augmentation
// factor, the data over-determines the 21 independent elastic constants.
//
// ⚙️ Usage:
//
//	import "github.com/materialsmath/elastica/strain"
//
//	n := strain.NumMeasurements(11, 105, len(rotations))
//	opts := strain.DefaultOptions()
//	opts.Seed = 42 // reproducible runs; 0 keeps entropy seeding
//	eps, err := strain.Generate(n, 0.01, &opts)
//
// Generated samples are meant to be frozen into the run's configuration
// so repeated runs reproduce from stored state rather than re-drawing.
package strain
