// SPDX-License-Identifier: MIT

package fit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/materialsmath/elastica/voigt"
)

// elementaryCharge is the 2019 SI exact value, in coulombs.
const elementaryCharge = 1.602176634e-19

// EVPerCubicAngstromToGPa converts an energy density from eV/Å³ to
// GPa: 1e21·e ≈ 160.2176634.
const EVPerCubicAngstromToGPa = 1e21 * elementaryCharge

// fitEnergy solves the energy-based regression: a single least-squares
// fit of total energy against the quadratic strain features
// 0.5·V·ε_a·ε_b for all a ≤ b, plus a constant-intercept column.
//
// Algorithm Outline:
//  1. Tile energy and volume across rotations (rotation-outer order,
//     matching the design rows; both are rotation invariants).
//  2. Build the 21 upper-triangle product columns, dropping any column
//     that is identically zero across all rows and remembering the
//     surviving (a,b) positions.
//  3. Prepend the intercept column and solve one OLS fit.
//  4. Scatter the non-intercept coefficients back into their
//     upper-triangle positions, scale by EVPerCubicAngstromToGPa, and
//     symmetrize as 0.5·(M + Mᵀ).
//
// The returned score slice holds the single global R² of the fit.
func fitEnergy(design *mat.Dense, energy, volume []float64) (voigt.Tensor, []float64, error) {
	n, _ := design.Dims()
	nSamples := len(energy)

	type triuPos struct{ a, b int }
	kept := make([]triuPos, 0, 21)
	columns := make([][]float64, 0, 21)
	for a := 0; a < 6; a++ {
		for b := a; b < 6; b++ {
			col := make([]float64, n)
			zero := true
			for row := 0; row < n; row++ {
				v := 0.5 * volume[row%nSamples] * design.At(row, a) * design.At(row, b)
				col[row] = v
				if v != 0 {
					zero = false
				}
			}
			if zero {
				continue
			}
			kept = append(kept, triuPos{a, b})
			columns = append(columns, col)
		}
	}

	x := mat.NewDense(n, 1+len(kept), nil)
	y := make([]float64, n)
	for row := 0; row < n; row++ {
		x.Set(row, 0, 1) // intercept
		y[row] = energy[row%nSamples]
	}
	for k, col := range columns {
		x.SetCol(1+k, col)
	}

	coef, r2, err := solveOLS(x, y)
	if err != nil {
		return voigt.Tensor{}, nil, err
	}

	var upper voigt.Tensor
	for k, pos := range kept {
		upper[pos.a][pos.b] = coef[1+k] * EVPerCubicAngstromToGPa
	}
	var tensor voigt.Tensor
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			tensor[i][j] = 0.5 * (upper[i][j] + upper[j][i])
		}
	}

	return tensor, []float64{r2}, nil
}
