package symmetry

import (
	"math"

	"github.com/materialsmath/elastica/voigt"
)

// RoundDecimals is the fixed decimal precision used to compare rotation
// matrices during deduplication. The value is part of the algorithm's
// compatibility contract with existing symmetry outputs; do not change it.
const RoundDecimals = 6

const roundScale = 1e6 // 10^RoundDecimals

// Reduce deduplicates a set of rotation matrices to a minimal
// generating set.
//
// Algorithm Outline:
//  1. Prepend the identity matrix.
//  2. Round every entry to RoundDecimals decimal places.
//  3. Keep the first occurrence of each rounded matrix, in input order.
//
// The returned matrices are the original (unrounded) values; rounding
// is only a comparison key. The result always contains at least the
// identity, and a nil or empty input yields exactly [identity].
func Reduce(rotations []voigt.Mat3) []voigt.Mat3 {
	out := make([]voigt.Mat3, 0, len(rotations)+1)
	seen := make(map[[9]float64]struct{}, len(rotations)+1)

	keep := func(r voigt.Mat3) {
		var key [9]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				key[3*i+j] = math.Round(r[i][j]*roundScale) / roundScale
			}
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}

	keep(voigt.Identity())
	for _, r := range rotations {
		keep(r)
	}

	return out
}
