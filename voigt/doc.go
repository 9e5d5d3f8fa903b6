// Package voigt provides the small fixed-size tensor algebra behind
// elastic-tensor fitting: 3x3 symmetric matrices, their 6-component
// Voigt encodings, the 6x6 elastic tensor, and the full rank-4 form.
//
// 🚀 What is Voigt notation?
//
//	A compact encoding that collapses the symmetric index pair (i,j) of a
//	rank-2 or rank-4 tensor into a single index 0–5: diagonal pairs map
//	to 0,1,2 and off-diagonal pairs to 3,4,5 by the cyclic complement
//	rule m(i,j) = 6-i-j. Strain vectors double their off-diagonal
//	entries; stress vectors do not.
//
// ✨ Key operations:
//   - ToFull / FromFull — expand a 6x6 tensor to 3x3x3x3 and back
//     (exact round-trip on tensors produced by ToFull)
//   - Rotate — re-express a 6x6 tensor in a new crystallographic
//     orientation; rows are normalized first and a non-orthogonal
//     orientation is rejected with ErrInvalidOrientation
//   - RotateSym — conjugate a symmetric 3x3 matrix by a rotation
//
// All operations are deterministic, allocation-light, and mutate
// nothing: value types in, value types out.
package voigt
