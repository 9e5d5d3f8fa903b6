// SPDX-License-Identifier: MIT

package voigt

// ToFull expands a 6x6 Voigt tensor into the full rank-4 form:
// C[i][j][k][l] = c[Index(i,j)][Index(k,l)]. Redundant components are
// populated from the same Voigt entry, so the result carries the full
// minor symmetries of the source.
//
// Complexity: Time O(3^4), Space O(3^4) (fixed).
func ToFull(c Tensor) Full {
	var full Full
	var i, j, k, l int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				for l = 0; l < 3; l++ {
					full[i][j][k][l] = c[Index(i, j)][Index(k, l)]
				}
			}
		}
	}

	return full
}

// FromFull contracts a full rank-4 tensor back to 6x6 Voigt form.
// Redundant source components are discarded (last write wins under the
// fixed i→j→k→l order); on a tensor produced by ToFull the round-trip
// is exact.
func FromFull(full Full) Tensor {
	var c Tensor
	var i, j, k, l int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				for l = 0; l < 3; l++ {
					c[Index(i, j)][Index(k, l)] = full[i][j][k][l]
				}
			}
		}
	}

	return c
}
