// Package fit recovers the 6x6 elastic tensor from strain samples and
// their simulated mechanical response, by ordinary least squares.
//
// 🚀 What does the fit engine do?
//
//	Given n symmetric strain tensors and either per-sample stress
//	tensors or per-sample (energy, volume) pairs, ElasticTensor:
//	  1. Reduces the rotation set (identity always included) and
//	     replicates every sample under each rotation, multiplying the
//	     effective data count by the symmetry factor.
//	  2. Converts augmented strains to Voigt 6-vectors (off-diagonals
//	     doubled) to form the regression design matrix.
//	  3. Solves one of two regressions:
//	     • stress path — six independent no-intercept fits, one per
//	       Voigt stress component; row i of the tensor is the
//	       coefficient vector for stress component i.
//	     • energy path — a single fit of energy against the upper
//	       triangle of 0.5·V·ε_a·ε_b (plus an intercept), scattered
//	       back into a symmetric tensor and converted from eV/Å³ to GPa.
//
// ✨ Properties:
//   - stress takes priority when both response channels are present
//     and length-compatible
//   - per-component R² scores on the stress path, one global R² on the
//     energy path
//   - deterministic: QR least squares, fixed augmentation order
//     (rotation-outer, sample-inner)
//
// Errors are sentinels checked via errors.Is: ErrInsufficientData when
// no strain samples exist, ErrInputMismatch when neither response
// channel aligns with the augmented strain count.
package fit
