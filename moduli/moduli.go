package moduli

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/materialsmath/elastica/voigt"
)

// ErrSingularBlock is returned when the upper 3x3 block of the tensor
// cannot be inverted, leaving Young's modulus and Poisson's ratio undefined.
var ErrSingularBlock = errors.New("moduli: upper 3x3 block is singular")

// Constants holds the isotropic elastic constants derived from a 6x6
// elastic tensor. Units follow the tensor's (GPa for pressure-like values).
type Constants struct {
	LameCoefficient float64
	ShearModulus    float64
	BulkModulus     float64
	YoungsModulus   float64
	PoissonsRatio   float64
	ZenerRatio      float64
}

// Map returns the constants as a flat name→value mapping, keyed the way
// the run output persists them.
func (c Constants) Map() map[string]float64 {
	return map[string]float64{
		"lame_coefficient": c.LameCoefficient,
		"shear_modulus":    c.ShearModulus,
		"bulk_modulus":     c.BulkModulus,
		"youngs_modulus":   c.YoungsModulus,
		"poissons_ratio":   c.PoissonsRatio,
		"zener_ratio":      c.ZenerRatio,
	}
}

// Derive computes the isotropic constants from a 6x6 elastic tensor.
//
// With U = C[0:3,0:3] (normal block) and S = C[3:6,3:6] (shear block):
//
//	lame    = mean(diag(U))
//	shear   = mean(diag(S))
//	bulk    = mean(U)                      (all 9 entries)
//	youngs  = 1 / mean(diag(U⁻¹))
//	poisson = -youngs·sum(U⁻¹)/6 + 0.5
//	zener   = 12·shear / (3·trace(U) - sum(U))
//
// Errors:
//   - ErrSingularBlock — U is not invertible.
func Derive(c voigt.Tensor) (Constants, error) {
	upper := mat.NewDense(3, 3, []float64{
		c[0][0], c[0][1], c[0][2],
		c[1][0], c[1][1], c[1][2],
		c[2][0], c[2][1], c[2][2],
	})

	var inv mat.Dense
	if err := inv.Inverse(upper); err != nil {
		return Constants{}, fmt.Errorf("%w: %v", ErrSingularBlock, err)
	}

	var out Constants
	var trace, sum, invDiag, invSum float64
	for i := 0; i < 3; i++ {
		out.LameCoefficient += c[i][i] / 3
		out.ShearModulus += c[3+i][3+i] / 3
		trace += c[i][i]
		invDiag += inv.At(i, i) / 3
		for j := 0; j < 3; j++ {
			sum += c[i][j]
			invSum += inv.At(i, j)
		}
	}
	out.BulkModulus = sum / 9
	out.YoungsModulus = 1 / invDiag
	out.PoissonsRatio = -out.YoungsModulus*invSum/6 + 0.5
	out.ZenerRatio = 12 * out.ShearModulus / (3*trace - sum)

	return out, nil
}
