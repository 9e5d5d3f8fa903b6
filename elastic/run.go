package elastic

import (
	"errors"
	"fmt"

	"github.com/materialsmath/elastica/fit"
	"github.com/materialsmath/elastica/moduli"
	"github.com/materialsmath/elastica/strain"
	"github.com/materialsmath/elastica/symmetry"
	"github.com/materialsmath/elastica/voigt"
)

var (
	// ErrAlreadyCollected is returned by Collect after a successful
	// collection: the output mapping is written exactly once per run.
	ErrAlreadyCollected = errors.New("elastic: results already collected for this run")

	// ErrNotCollected is returned by queries that need the fitted
	// tensor before Collect has run.
	ErrNotCollected = errors.New("elastic: no collected output yet")
)

// Output is the flat mapping persisted for a run: the fitted tensor,
// fit score, elastic constants, and the raw collected arrays.
//
// Keys: elastic_tensor (voigt.Tensor), fit_score ([]float64),
// lame_coefficient, shear_modulus, bulk_modulus, youngs_modulus,
// poissons_ratio, zener_ratio (float64), energy ([]float64),
// pressures ([]voigt.Mat3), volume ([]float64), id ([]int).
type Output map[string]any

// Run is one elastic-tensor computation: configuration frozen at
// construction, results collected exactly once.
type Run struct {
	cfg       Config
	strains   []voigt.Mat3
	rotations []voigt.Mat3

	collected bool
	tensor    voigt.Tensor
	output    Output
}

// NewRun freezes a run from its configuration.
//
// When cfg.Rotations is empty and UseSymmetry is set, the rotation set
// is derived from sym (which may be nil to skip symmetry entirely) and
// reduced. When cfg.StrainMatrices is empty, the strain set is
// generated — sized by the minimum-measurement/minimum-point policy
// against the reduced rotation count — and frozen. Both frozen sets are
// readable via Strains and Rotations for persistence, so a later run
// can be reconstructed from stored state.
func NewRun(cfg Config, sym SymmetrySource) (*Run, error) {
	if cfg.MinNumMeasurements == 0 {
		cfg.MinNumMeasurements = DefaultMinNumMeasurements
	}
	if cfg.MinNumPoints == 0 {
		cfg.MinNumPoints = DefaultMinNumPoints
	}
	if cfg.MaxStrain == 0 {
		cfg.MaxStrain = DefaultMaxStrain
	}

	rotations := cfg.Rotations
	if len(rotations) == 0 && cfg.UseSymmetry && sym != nil {
		derived, err := sym.Rotations(cfg.UseElements)
		if err != nil {
			return nil, fmt.Errorf("elastic: symmetry source: %w", err)
		}
		rotations = derived
	}
	rotations = symmetry.Reduce(rotations)

	strains := cfg.StrainMatrices
	if len(strains) == 0 {
		n := strain.NumMeasurements(cfg.MinNumMeasurements, cfg.MinNumPoints, len(rotations))
		opts := strain.Options{Seed: cfg.Seed}
		generated, err := strain.Generate(n, cfg.MaxStrain, &opts)
		if err != nil {
			return nil, err
		}
		strains = generated
	}

	cfg.StrainMatrices = strains
	cfg.Rotations = rotations

	return &Run{cfg: cfg, strains: strains, rotations: rotations}, nil
}

// Strains returns a copy of the run's frozen strain set.
func (r *Run) Strains() []voigt.Mat3 {
	out := make([]voigt.Mat3, len(r.strains))
	copy(out, r.strains)

	return out
}

// Rotations returns a copy of the run's reduced rotation set.
func (r *Run) Rotations() []voigt.Mat3 {
	out := make([]voigt.Mat3, len(r.rotations))
	copy(out, r.rotations)

	return out
}

// Variants enumerates the strained structures to simulate, one per
// frozen strain sample, in sample order.
func (r *Run) Variants(ref Structure) []Variant {
	return GenerateStrainedVariants(ref, r.strains)
}

// Collect ingests the run's simulation results, fits the elastic
// tensor, derives the elastic constants, and freezes the output
// mapping. The stress channel is built as -pressures when the pressure
// channel is complete; the fit engine picks the stress path when it
// aligns, falling back to energy+volume.
//
// Errors:
//   - ErrAlreadyCollected — Collect already succeeded for this run.
//   - fit.ErrInsufficientData, fit.ErrInputMismatch — propagated unrecovered.
//   - moduli.ErrSingularBlock — the fitted tensor has a singular upper block.
func (r *Run) Collect(res Results) (Output, error) {
	if r.collected {
		return nil, ErrAlreadyCollected
	}

	data := res.collect()
	var resp fit.Response
	if len(data.pressures) > 0 {
		resp.Stress = make([]voigt.Mat3, len(data.pressures))
		for i, p := range data.pressures {
			resp.Stress[i] = voigt.Neg(p)
		}
	}
	if len(data.energy) > 0 {
		resp.Energy = data.energy
	}
	if len(data.volume) > 0 {
		resp.Volume = data.volume
	}

	tensor, score, err := fit.ElasticTensor(r.strains, resp, r.rotations)
	if err != nil {
		return nil, err
	}
	constants, err := moduli.Derive(tensor)
	if err != nil {
		return nil, err
	}

	out := Output{
		"elastic_tensor": tensor,
		"fit_score":      score,
		"energy":         data.energy,
		"pressures":      data.pressures,
		"volume":         data.volume,
		"id":             data.ids,
	}
	for name, value := range constants.Map() {
		out[name] = value
	}

	r.tensor = tensor
	r.output = out
	r.collected = true

	return out, nil
}

// Output returns the frozen output mapping, or ErrNotCollected before
// Collect has run.
func (r *Run) Output() (Output, error) {
	if !r.collected {
		return nil, ErrNotCollected
	}

	return r.output, nil
}

// TensorInOrientation re-expresses the fitted elastic tensor in the
// given orientation. Pure query over the stored tensor; an invalid
// orientation fails with voigt.ErrInvalidOrientation and leaves the
// stored state untouched.
func (r *Run) TensorInOrientation(orientation voigt.Mat3) (voigt.Tensor, error) {
	if !r.collected {
		return voigt.Tensor{}, ErrNotCollected
	}

	return voigt.Rotate(orientation, r.tensor)
}
