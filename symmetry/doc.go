// Package symmetry reduces a crystal's point-group rotation set to a
// minimal generating set for sample augmentation.
//
// Symmetry analysis libraries commonly report rotation matrices with
// numerical noise and duplicates; Reduce rounds every matrix to a fixed
// precision (RoundDecimals), deduplicates, and guarantees the identity
// is present so that the original, unrotated samples always survive
// augmentation. The reduced set feeds both the sample-count policy
// (strain.NumMeasurements) and the fit engine's augmentation step.
package symmetry
