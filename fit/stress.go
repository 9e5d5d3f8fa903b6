// SPDX-License-Identifier: MIT

package fit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/materialsmath/elastica/voigt"
)

// fitStress solves the stress-based regression: six independent
// no-intercept least-squares fits, one per Voigt stress component,
// against the shared strain design matrix.
//
// Stress tensors are replicated under each rotation (R·σ·Rᵀ) in the
// same rotation-outer order as the design rows, then encoded as Voigt
// vectors with un-doubled off-diagonals. Row i of the returned tensor
// is the coefficient vector of stress component i; score i is its R².
func fitStress(design *mat.Dense, stress []voigt.Mat3, rots []voigt.Mat3) (voigt.Tensor, []float64, error) {
	n, _ := design.Dims()

	augmented := make([]voigt.Vec6, 0, n)
	for _, r := range rots {
		for _, s := range stress {
			augmented = append(augmented, voigt.StressVector(voigt.RotateSym(r, s)))
		}
	}

	var tensor voigt.Tensor
	score := make([]float64, 6)
	y := make([]float64, n)
	for comp := 0; comp < 6; comp++ {
		for row := 0; row < n; row++ {
			y[row] = augmented[row][comp]
		}
		coef, r2, err := solveOLS(design, y)
		if err != nil {
			return voigt.Tensor{}, nil, err
		}
		copy(tensor[comp][:], coef)
		score[comp] = r2
	}

	return tensor, score, nil
}
