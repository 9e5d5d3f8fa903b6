package elastic

import (
	"sort"

	"github.com/materialsmath/elastica/voigt"
)

// ChildSnapshot is the final state of one child simulation. Channels a
// driver cannot report are left with their Has flag false; a channel
// missing on any child degrades that whole channel to unavailable
// (silently — the fit only needs one complete channel).
//
// Pressures follow the simulation convention: stress = -pressure.
type ChildSnapshot struct {
	ID int

	Energy    float64
	HasEnergy bool

	Pressures    voigt.Mat3
	HasPressures bool

	Volume    float64
	HasVolume bool
}

// Results is the polymorphic ingestion contract: both collection modes
// reduce to the same per-sample arrays before fitting, so the fit
// engine never learns which variant produced them.
type Results interface {
	collect() collected
}

// collected is the common internal form: per-sample arrays, empty when
// the channel is unavailable.
type collected struct {
	energy    []float64
	pressures []voigt.Mat3
	volume    []float64
	ids       []int
}

// BatchResults holds one snapshot per completed child. Snapshots may
// arrive in any completion order; they are sorted by child id before
// reduction so output arrays align with ascending ids.
type BatchResults struct {
	Children []ChildSnapshot
}

func (b BatchResults) collect() collected {
	children := make([]ChildSnapshot, len(b.Children))
	copy(children, b.Children)
	sort.Slice(children, func(i, j int) bool { return children[i].ID < children[j].ID })

	out := collected{
		energy:    make([]float64, 0, len(children)),
		pressures: make([]voigt.Mat3, 0, len(children)),
		volume:    make([]float64, 0, len(children)),
		ids:       make([]int, 0, len(children)),
	}
	energyOK, pressuresOK, volumeOK := true, true, true
	for _, c := range children {
		energyOK = energyOK && c.HasEnergy
		pressuresOK = pressuresOK && c.HasPressures
		volumeOK = volumeOK && c.HasVolume
		out.energy = append(out.energy, c.Energy)
		out.pressures = append(out.pressures, c.Pressures)
		out.volume = append(out.volume, c.Volume)
		out.ids = append(out.ids, c.ID)
	}
	if !energyOK {
		out.energy = nil
	}
	if !pressuresOK {
		out.pressures = nil
	}
	if !volumeOK {
		out.volume = nil
	}

	return out
}

// InteractiveResults holds the most recent state snapshot of a single
// interactive child: one entry per completed step, in step order. A nil
// channel means the driver does not report it.
type InteractiveResults struct {
	ID        int
	Energy    []float64
	Pressures []voigt.Mat3
	Volume    []float64
}

func (r InteractiveResults) collect() collected {
	return collected{
		energy:    r.Energy,
		pressures: r.Pressures,
		volume:    r.Volume,
		ids:       []int{r.ID},
	}
}
