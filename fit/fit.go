// SPDX-License-Identifier: MIT

package fit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/materialsmath/elastica/symmetry"
	"github.com/materialsmath/elastica/voigt"
)

// ElasticTensor fits the 6x6 elastic tensor to strain samples and their
// response data.
//
// rotations is the structure's point-group rotation set; it is reduced
// via symmetry.Reduce (identity prepended, duplicates dropped), so nil
// means "no symmetry augmentation". Each sample is replicated under
// each rotation before fitting, rotation-outer and sample-inner, and
// the response channel must align as
// len(response)·len(reducedRotations) == len(augmentedStrain).
//
// Returns the fitted tensor and the fit score: six per-component R²
// values on the stress path, a single global R² on the energy path.
//
// Errors:
//   - ErrInsufficientData — strains is empty.
//   - ErrInputMismatch    — no response channel aligns with the strains.
func ElasticTensor(strains []voigt.Mat3, resp Response, rotations []voigt.Mat3) (voigt.Tensor, []float64, error) {
	if len(strains) == 0 {
		return voigt.Tensor{}, nil, ErrInsufficientData
	}

	rots := symmetry.Reduce(rotations)
	design := strainDesign(strains, rots)
	n := len(rots) * len(strains)

	switch {
	case resp.Stress != nil && len(resp.Stress)*len(rots) == n:
		return fitStress(design, resp.Stress, rots)
	case resp.Energy != nil && resp.Volume != nil &&
		len(resp.Energy) == len(resp.Volume) && len(resp.Energy)*len(rots) == n:
		return fitEnergy(design, resp.Energy, resp.Volume)
	default:
		return voigt.Tensor{}, nil, ErrInputMismatch
	}
}

// strainDesign builds the regression design matrix: one Voigt strain
// 6-vector per augmented sample. Row order is rotation-outer,
// sample-inner; responses are tiled in the same order.
func strainDesign(strains []voigt.Mat3, rots []voigt.Mat3) *mat.Dense {
	design := mat.NewDense(len(rots)*len(strains), 6, nil)
	row := 0
	for _, r := range rots {
		for _, eps := range strains {
			v := voigt.StrainVector(voigt.RotateSym(r, eps))
			design.SetRow(row, v[:])
			row++
		}
	}

	return design
}
