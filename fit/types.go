// SPDX-License-Identifier: MIT

package fit

import "github.com/materialsmath/elastica/voigt"

// Response carries the simulated mechanical response of the strain
// samples, in the same order as the strain slice. Exactly one channel
// is used per fit:
//
//   - Stress — one symmetric 3x3 stress tensor per sample. Preferred
//     when present and length-compatible.
//   - Energy + Volume — scalar total energy and cell volume per sample;
//     the fallback when stress is unavailable. Energy is expected in eV
//     and volume in Å³; the fitted tensor comes out in GPa.
//
// Unused channels may be nil.
type Response struct {
	Stress []voigt.Mat3
	Energy []float64
	Volume []float64
}
