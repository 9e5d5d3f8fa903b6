// SPDX-License-Identifier: MIT

package voigt

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// OrientationTol is the tolerance within which the determinant of a
// row-normalized orientation must equal 1 for Rotate to accept it.
const OrientationTol = 1e-6

// ErrInvalidOrientation is returned when a requested orientation is not
// expressible as an orthogonal determinant-1 matrix after row
// normalization.
var ErrInvalidOrientation = errors.New("voigt: orientation must be an orthogonal 3x3 matrix")

// Rotate re-expresses a 6x6 elastic tensor in a new orientation.
//
// Algorithm Outline:
//  1. Normalize each row of orientation to unit length. Rows may carry
//     any nonzero scale (e.g. [[1,1,1],[-1,0,1],[1,-2,1]]).
//  2. Reject the orientation unless det ≈ 1 within OrientationTol.
//     Normalization only fixes row lengths, not orthogonality, so a
//     skewed input still fails here.
//  3. Expand c to the full rank-4 form, apply
//     C'[I,J,K,L] = Σ R[I,i]·R[J,j]·R[K,k]·R[L,l]·C[i,j,k,l],
//     and contract back to Voigt form.
//
// Errors:
//   - ErrInvalidOrientation — zero row, or determinant ≠ 1 within tolerance.
//
// Complexity: Time O(3^8) (fixed), Space O(3^4).
func Rotate(orientation Mat3, c Tensor) (Tensor, error) {
	var r Mat3
	var i, j, k, l int
	for i = 0; i < 3; i++ {
		norm := math.Hypot(math.Hypot(orientation[i][0], orientation[i][1]), orientation[i][2])
		if norm == 0 {
			return Tensor{}, ErrInvalidOrientation
		}
		for j = 0; j < 3; j++ {
			r[i][j] = orientation[i][j] / norm
		}
	}

	det := mat.Det(mat.NewDense(3, 3, []float64{
		r[0][0], r[0][1], r[0][2],
		r[1][0], r[1][1], r[1][2],
		r[2][0], r[2][1], r[2][2],
	}))
	if math.Abs(det-1) > OrientationTol {
		return Tensor{}, ErrInvalidOrientation
	}

	full := ToFull(c)
	var rotated Full
	var bI, bJ, bK, bL int
	var sum float64
	for bI = 0; bI < 3; bI++ {
		for bJ = 0; bJ < 3; bJ++ {
			for bK = 0; bK < 3; bK++ {
				for bL = 0; bL < 3; bL++ {
					sum = 0
					for i = 0; i < 3; i++ {
						for j = 0; j < 3; j++ {
							for k = 0; k < 3; k++ {
								for l = 0; l < 3; l++ {
									sum += r[bI][i] * r[bJ][j] * r[bK][k] * r[bL][l] * full[i][j][k][l]
								}
							}
						}
					}
					rotated[bI][bJ][bK][bL] = sum
				}
			}
		}
	}

	return FromFull(rotated), nil
}
