package symmetry_test

import (
	"testing"

	"github.com/materialsmath/elastica/symmetry"
	"github.com/materialsmath/elastica/voigt"
	"github.com/stretchr/testify/assert"
)

// TestReduce_Empty verifies a nil input yields exactly the identity.
func TestReduce_Empty(t *testing.T) {
	got := symmetry.Reduce(nil)
	assert.Len(t, got, 1)
	assert.Equal(t, voigt.Identity(), got[0])
}

// TestReduce_DeduplicatesWithinPrecision verifies that two copies of
// the identity — one perturbed below the rounding precision — and one
// 90° rotation reduce to exactly two matrices.
func TestReduce_DeduplicatesWithinPrecision(t *testing.T) {
	perturbed := voigt.Identity()
	perturbed[0][0] += 5e-8
	perturbed[1][2] -= 5e-8
	z90 := voigt.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}

	got := symmetry.Reduce([]voigt.Mat3{voigt.Identity(), perturbed, z90})
	assert.Len(t, got, 2)
	assert.Equal(t, voigt.Identity(), got[0], "identity always leads")
	assert.Equal(t, z90, got[1])
}

// TestReduce_KeepsDistinctAbovePrecision verifies a perturbation above
// the rounding precision survives as a distinct matrix.
func TestReduce_KeepsDistinctAbovePrecision(t *testing.T) {
	perturbed := voigt.Identity()
	perturbed[0][0] += 5e-6 // rounds to 1.000005, distinct at 6 decimals

	got := symmetry.Reduce([]voigt.Mat3{perturbed})
	assert.Len(t, got, 2)
}

// TestReduce_PreservesFirstOccurrenceOrder verifies order follows first
// occurrence in the input, after the prepended identity.
func TestReduce_PreservesFirstOccurrenceOrder(t *testing.T) {
	z90 := voigt.Mat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	z180 := voigt.Mat3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}

	got := symmetry.Reduce([]voigt.Mat3{z180, z90, z180})
	assert.Equal(t, []voigt.Mat3{voigt.Identity(), z180, z90}, got)
}

// TestReduce_ReturnsOriginalValues verifies the kept matrices are the
// unrounded originals; rounding is only the comparison key.
func TestReduce_ReturnsOriginalValues(t *testing.T) {
	noisy := voigt.Mat3{{0, -1.0000004, 0}, {0.9999996, 0, 0}, {0, 0, 1}}

	got := symmetry.Reduce([]voigt.Mat3{noisy})
	assert.Len(t, got, 2)
	assert.Equal(t, noisy, got[1])
}
