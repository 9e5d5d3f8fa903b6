package elastic

import "github.com/materialsmath/elastica/voigt"

// Default configuration values. The defaults suit a structure with a
// rich symmetry group; with few rotations, or a driver that cannot
// report pressure, raise MinNumMeasurements.
const (
	DefaultMinNumMeasurements = 11
	DefaultMinNumPoints       = 105
	DefaultMaxStrain          = 0.01
)

// Config is the per-run input of the fitting core. All fields have
// working defaults; see DefaultConfig.
//
// Fields:
//   - MinNumMeasurements — minimum number of strained simulations to launch.
//   - MinNumPoints — minimum number of fit data points; the measurement
//     count becomes max(MinNumMeasurements, ceil(MinNumPoints/len(rotations))).
//   - MaxStrain — bound on the per-entry strain magnitude.
//   - StrainMatrices — pre-supplied strain set; generated (and frozen)
//     when empty.
//   - UseSymmetry — whether to derive rotations from the structure's
//     symmetry (ignored when Rotations is already set).
//   - Rotations — pre-supplied point-group rotation set; derived from
//     the symmetry source when empty and UseSymmetry is true.
//   - UseElements — whether chemical species participate in symmetry
//     detection; forwarded to the symmetry source untouched.
//   - Seed — seed for strain generation; zero keeps entropy seeding.
type Config struct {
	MinNumMeasurements int
	MinNumPoints       int
	MaxStrain          float64
	StrainMatrices     []voigt.Mat3
	UseSymmetry        bool
	Rotations          []voigt.Mat3
	UseElements        bool
	Seed               uint64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinNumMeasurements: DefaultMinNumMeasurements,
		MinNumPoints:       DefaultMinNumPoints,
		MaxStrain:          DefaultMaxStrain,
		UseSymmetry:        true,
		UseElements:        true,
	}
}

// Structure is the minimal contract with the external structure
// library: a reference crystal structure that can produce a strained
// copy of itself. Implementations must not mutate the receiver.
type Structure interface {
	ApplyStrain(eps voigt.Mat3) Structure
}

// SymmetrySource supplies the point-group rotations of the reference
// structure, optionally keyed by element identity. Typically backed by
// an external symmetry-analysis library.
type SymmetrySource interface {
	Rotations(useElements bool) ([]voigt.Mat3, error)
}

// Variant pairs a strain index with the strained structure to simulate.
// The index ties the child simulation back to its strain sample, so
// children may complete in any order.
type Variant struct {
	Index     int
	Structure Structure
}

// GenerateStrainedVariants applies each strain matrix to the reference
// structure, producing one indexed variant per sample in input order.
// The caller owns execution; this is a pure enumeration.
func GenerateStrainedVariants(ref Structure, strains []voigt.Mat3) []Variant {
	variants := make([]Variant, len(strains))
	for i, eps := range strains {
		variants[i] = Variant{Index: i, Structure: ref.ApplyStrain(eps)}
	}

	return variants
}
