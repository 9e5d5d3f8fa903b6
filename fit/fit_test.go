// SPDX-License-Identifier: MIT

package fit_test

import (
	"testing"

	"github.com/materialsmath/elastica/fit"
	"github.com/materialsmath/elastica/strain"
	"github.com/materialsmath/elastica/voigt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isotropicTensor builds the elastic tensor of an isotropic material
// with Lamé parameter lambda and shear modulus mu (both in GPa).
// Isotropy makes synthetic stress data consistent under any rotation
// augmentation.
func isotropicTensor(lambda, mu float64) voigt.Tensor {
	var c voigt.Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = lambda
		}
		c[i][i] = lambda + 2*mu
		c[3+i][3+i] = mu
	}

	return c
}

// stressFor computes the exact linear response σ = C·ε (Voigt) and
// reassembles it as a symmetric 3x3 stress matrix.
func stressFor(c voigt.Tensor, eps voigt.Mat3) voigt.Mat3 {
	e := voigt.StrainVector(eps)
	var s voigt.Vec6
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			s[i] += c[i][j] * e[j]
		}
	}

	return voigt.Mat3{
		{s[0], s[5], s[4]},
		{s[5], s[1], s[3]},
		{s[4], s[3], s[2]},
	}
}

// energyFor computes the exact quadratic response
// E = offset + 0.5·V·εᵀ·C·ε with C given in eV/Å³.
func energyFor(cEV voigt.Tensor, eps voigt.Mat3, volume, offset float64) float64 {
	e := voigt.StrainVector(eps)
	quad := 0.0
	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			quad += cEV[a][b] * e[a] * e[b]
		}
	}

	return offset + 0.5*volume*quad
}

func testStrains(t *testing.T, count int, seed uint64) []voigt.Mat3 {
	t.Helper()
	opts := strain.Options{Seed: seed}
	strains, err := strain.Generate(count, 0.01, &opts)
	require.NoError(t, err)

	return strains
}

// TestElasticTensor_StressRecoversKnown verifies the stress path
// recovers a known tensor from exact synthetic data with R² ≈ 1 on all
// six components.
func TestElasticTensor_StressRecoversKnown(t *testing.T) {
	known := isotropicTensor(60, 40)
	strains := testStrains(t, 30, 7)

	stress := make([]voigt.Mat3, len(strains))
	for i, eps := range strains {
		stress[i] = stressFor(known, eps)
	}

	tensor, score, err := fit.ElasticTensor(strains, fit.Response{Stress: stress}, nil)
	require.NoError(t, err)
	require.Len(t, score, 6)
	for comp, r2 := range score {
		assert.InDelta(t, 1.0, r2, 1e-9, "component %d score", comp)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.InDelta(t, known[i][j], tensor[i][j], 1e-6, "entry (%d,%d)", i, j)
		}
	}
}

// TestElasticTensor_StressWithRotations verifies symmetry augmentation:
// an isotropic tensor is invariant under rotation, so augmented data
// stays consistent and the fit still recovers it exactly.
func TestElasticTensor_StressWithRotations(t *testing.T) {
	known := isotropicTensor(60, 40)
	strains := testStrains(t, 30, 9)
	rotations := []voigt.Mat3{
		voigt.Identity(), // duplicate of the implicit identity
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	}

	stress := make([]voigt.Mat3, len(strains))
	for i, eps := range strains {
		stress[i] = stressFor(known, eps)
	}

	tensor, score, err := fit.ElasticTensor(strains, fit.Response{Stress: stress}, rotations)
	require.NoError(t, err)
	for comp, r2 := range score {
		assert.InDelta(t, 1.0, r2, 1e-9, "component %d score", comp)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.InDelta(t, known[i][j], tensor[i][j], 1e-6, "entry (%d,%d)", i, j)
		}
	}
}

// TestElasticTensor_EnergyRecoversKnown verifies the energy path:
// quadratic synthetic energies (with a constant offset, absorbed by the
// intercept) recover the tensor after the eV/Å³→GPa conversion.
func TestElasticTensor_EnergyRecoversKnown(t *testing.T) {
	known := isotropicTensor(60, 40)
	var knownEV voigt.Tensor
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			knownEV[i][j] = known[i][j] / fit.EVPerCubicAngstromToGPa
		}
	}

	strains := testStrains(t, 40, 13)
	energy := make([]float64, len(strains))
	volume := make([]float64, len(strains))
	for i, eps := range strains {
		volume[i] = 11.8 + 0.01*float64(i)
		energy[i] = energyFor(knownEV, eps, volume[i], -340.5)
	}

	tensor, score, err := fit.ElasticTensor(strains, fit.Response{Energy: energy, Volume: volume}, nil)
	require.NoError(t, err)
	require.Len(t, score, 1)
	assert.InDelta(t, 1.0, score[0], 1e-9)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.InDelta(t, known[i][j], tensor[i][j], 1e-4, "entry (%d,%d)", i, j)
			assert.InDelta(t, tensor[i][j], tensor[j][i], 1e-9, "symmetry (%d,%d)", i, j)
		}
	}
}

// TestElasticTensor_StressTakesPriority verifies that when both
// channels are present and length-compatible, the stress path wins: the
// energy channel is filled with garbage and must not influence the fit.
func TestElasticTensor_StressTakesPriority(t *testing.T) {
	known := isotropicTensor(60, 40)
	strains := testStrains(t, 30, 17)

	stress := make([]voigt.Mat3, len(strains))
	energy := make([]float64, len(strains))
	volume := make([]float64, len(strains))
	for i, eps := range strains {
		stress[i] = stressFor(known, eps)
		energy[i] = float64(i) * 1e6 // nonsense
		volume[i] = 1
	}

	tensor, score, err := fit.ElasticTensor(strains, fit.Response{Stress: stress, Energy: energy, Volume: volume}, nil)
	require.NoError(t, err)
	require.Len(t, score, 6, "stress path reports one score per component")
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.InDelta(t, known[i][j], tensor[i][j], 1e-6)
		}
	}
}

// TestElasticTensor_EmptyStrain verifies the empty-input sentinel.
func TestElasticTensor_EmptyStrain(t *testing.T) {
	_, _, err := fit.ElasticTensor(nil, fit.Response{}, nil)
	assert.ErrorIs(t, err, fit.ErrInsufficientData)

	_, _, err = fit.ElasticTensor([]voigt.Mat3{}, fit.Response{}, nil)
	assert.ErrorIs(t, err, fit.ErrInsufficientData)
}

// TestElasticTensor_InputMismatch verifies length-mismatch detection on
// both response channels.
func TestElasticTensor_InputMismatch(t *testing.T) {
	strains := testStrains(t, 2, 21)

	// one stress for two strains, no energy
	_, _, err := fit.ElasticTensor(strains, fit.Response{Stress: []voigt.Mat3{{}}}, nil)
	assert.ErrorIs(t, err, fit.ErrInputMismatch)

	// energy without volume
	_, _, err = fit.ElasticTensor(strains, fit.Response{Energy: []float64{1, 2}}, nil)
	assert.ErrorIs(t, err, fit.ErrInputMismatch)

	// energy and volume of different lengths
	_, _, err = fit.ElasticTensor(strains, fit.Response{Energy: []float64{1, 2}, Volume: []float64{1}}, nil)
	assert.ErrorIs(t, err, fit.ErrInputMismatch)

	// no response data at all
	_, _, err = fit.ElasticTensor(strains, fit.Response{}, nil)
	assert.ErrorIs(t, err, fit.ErrInputMismatch)
}

// TestConversionConstant pins the eV/Å³→GPa factor.
func TestConversionConstant(t *testing.T) {
	assert.InDelta(t, 160.2176634, fit.EVPerCubicAngstromToGPa, 1e-7)
}
