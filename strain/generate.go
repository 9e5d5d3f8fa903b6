package strain

import (
	"errors"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/materialsmath/elastica/voigt"
)

// ErrNonPositiveCount is returned when a non-positive sample count is requested.
var ErrNonPositiveCount = errors.New("strain: sample count must be > 0")

// ErrNonPositiveStrain is returned when the maximum strain magnitude is not positive.
var ErrNonPositiveStrain = errors.New("strain: max strain must be > 0")

// NumMeasurements returns the number of independent strain samples to
// generate: max(minMeasurements, ceil(minPoints / max(numRotations, 1))).
//
// minPoints is the floor on total data points after symmetry
// augmentation; dividing it by the rotation count keeps the augmented
// design over-determined even for low-symmetry structures.
func NumMeasurements(minMeasurements, minPoints, numRotations int) int {
	if numRotations < 1 {
		numRotations = 1
	}
	perRotation := int(math.Ceil(float64(minPoints) / float64(numRotations)))
	if perRotation > minMeasurements {
		return perRotation
	}

	return minMeasurements
}

// Generate draws count random symmetric strain matrices of bounded
// magnitude.
//
// Algorithm Outline:
//  1. Fill each 3x3 matrix with uniform draws in [-maxStrain/2, maxStrain/2).
//  2. Symmetrize by M + Mᵀ. Diagonal entries end up in
//     [-maxStrain, maxStrain); off-diagonals are sums of two draws.
//
// Errors:
//   - ErrNonPositiveCount, ErrNonPositiveStrain on invalid parameters.
//
// Determinism: fully reproducible for a nonzero opts.Seed; a nil opts
// or zero seed draws from an entropy-based source.
func Generate(count int, maxStrain float64, opts *Options) ([]voigt.Mat3, error) {
	if count <= 0 {
		return nil, ErrNonPositiveCount
	}
	if maxStrain <= 0 {
		return nil, ErrNonPositiveStrain
	}

	var seed uint64
	if opts != nil {
		seed = opts.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	u := distuv.Uniform{
		Min: -maxStrain / 2,
		Max: maxStrain / 2,
		Src: rand.NewSource(seed),
	}

	samples := make([]voigt.Mat3, count)
	var n, i, j int
	for n = 0; n < count; n++ {
		var m voigt.Mat3
		for i = 0; i < 3; i++ {
			for j = 0; j < 3; j++ {
				m[i][j] = u.Rand()
			}
		}
		// symmetrize: M + Mᵀ
		var sym voigt.Mat3
		for i = 0; i < 3; i++ {
			for j = 0; j < 3; j++ {
				sym[i][j] = m[i][j] + m[j][i]
			}
		}
		samples[n] = sym
	}

	return samples, nil
}
