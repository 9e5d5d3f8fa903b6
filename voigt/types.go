// SPDX-License-Identifier: MIT

package voigt

// Mat3 is a 3x3 real matrix, used for strain and stress tensors,
// rotations, and orientations. Row-major: Mat3[row][col].
type Mat3 [3][3]float64

// Vec6 is a 6-component Voigt vector.
type Vec6 [6]float64

// Tensor is a 6x6 elastic tensor in Voigt notation.
type Tensor [6][6]float64

// Full is the fully expanded rank-4 elastic tensor C[i][j][k][l].
type Full [3][3][3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Index maps a tensor index pair (i,j), both in [0,3), to its Voigt
// index in [0,6): diagonal pairs to 0,1,2 and off-diagonal pairs to
// 3,4,5 by the cyclic complement 6-i-j. Symmetric in its arguments.
func Index(i, j int) int {
	if i == j {
		return i
	}

	return 6 - i - j
}

// StrainVector encodes a symmetric strain matrix as the Voigt 6-vector
// [e_xx, e_yy, e_zz, 2e_yz, 2e_xz, 2e_xy]. Off-diagonal doubling is the
// strain (engineering) convention; see StressVector for the un-doubled one.
func StrainVector(m Mat3) Vec6 {
	return Vec6{m[0][0], m[1][1], m[2][2], 2 * m[1][2], 2 * m[0][2], 2 * m[0][1]}
}

// StressVector encodes a symmetric stress matrix as the Voigt 6-vector
// [s_xx, s_yy, s_zz, s_yz, s_xz, s_xy].
func StressVector(m Mat3) Vec6 {
	return Vec6{m[0][0], m[1][1], m[2][2], m[1][2], m[0][2], m[0][1]}
}

// RotateSym conjugates a symmetric 3x3 matrix by a rotation: R·m·Rᵀ.
// The result is symmetric whenever m is symmetric and r orthogonal.
func RotateSym(r, m Mat3) Mat3 {
	var out Mat3
	var i, j, k, l int
	var sum float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			sum = 0
			for k = 0; k < 3; k++ {
				for l = 0; l < 3; l++ {
					sum += r[i][k] * m[k][l] * r[j][l]
				}
			}
			out[i][j] = sum
		}
	}

	return out
}

// Neg returns the entry-wise negation of m. Used at the orchestration
// boundary for the stress = -pressure sign convention.
func Neg(m Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = -m[i][j]
		}
	}

	return out
}
