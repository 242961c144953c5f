package track

import (
	"math"

	conf "github.com/yaptide/activetarget/config"
	"github.com/yaptide/activetarget/geometry"
	"github.com/yaptide/activetarget/score"
)

var log = conf.NamedLogger("track")

// Tracked muon species, named as in the particle tables.
const (
	ParticleMuonMinus = "muon_minus"
	ParticleMuonPlus  = "muon_plus"
)

// IsTrackedSpecies reports whether the particle is one of the two
// tracked muon charge states.
func IsTrackedSpecies(particle string) bool {
	return particle == ParticleMuonMinus || particle == ParticleMuonPlus
}

// StepRecord is the transient per-callback view of one trajectory
// step, as reported by the transport engine.
type StepRecord struct {
	// Particle species tag.
	Particle string

	// TrackID of the stepping particle.
	TrackID int

	// Position at the step point, in mm.
	Position geometry.Point

	// KineticEnergy at the step point, in MeV.
	KineticEnergy float64

	// StepNumber is the step ordinal within the track; 1 means the
	// particle was just created.
	StepNumber int

	// Terminal is set when the track ends at this step.
	Terminal bool

	// Volume at the pre-termination point. Nil in open space.
	Volume *geometry.Volume
}

// StepClassifier is the per-step scoring callback. It filters by
// species, classifies creation vs. termination, resolves the stopping
// volume against the target registry and appends the diagnostics
// samples. Exactly one classifier instance serves one run on one
// callback thread, so histogram writes are pure appends.
type StepClassifier struct {
	configuration *geometry.DetectorConfiguration
	accumulator   *score.Accumulator
	filter        *EventFilter
}

// NewStepClassifier constructor.
func NewStepClassifier(
	configuration *geometry.DetectorConfiguration,
	accumulator *score.Accumulator,
	filter *EventFilter,
) *StepClassifier {
	return &StepClassifier{
		configuration: configuration,
		accumulator:   accumulator,
		filter:        filter,
	}
}

// OnStep classifies one step record.
func (c *StepClassifier) OnStep(record StepRecord) {
	if !IsTrackedSpecies(record.Particle) {
		return
	}

	// Muon was just created.
	if record.StepNumber == 1 {
		c.accumulator.RecordCreation(record.KineticEnergy)
		c.filter.Retain()
	}

	// Muon is about to stop.
	if record.Terminal {
		radius := math.Hypot(record.Position.X, record.Position.Y)
		z := record.Position.Z
		c.accumulator.RecordStop(z, radius)

		index := c.configuration.Targets.Resolve(record.Volume)
		if index != geometry.Unresolved {
			c.accumulator.RecordStopTarget(index)
		}

		volumeName := "OpenSpace"
		if record.Volume != nil {
			volumeName = record.Volume.Name
		}
		log.Debugf("[MuonStopped] %s | Track ID: %d | Z = %.2f mm | Volume: %s",
			record.Particle, record.TrackID, z, volumeName)

		if c.configuration.Gas != nil && record.Volume == c.configuration.Gas.Volume {
			log.Debugf("[MuonStopped-DT] %s | Z = %.2f mm | R = %.2f mm",
				record.Particle, z, radius)
			c.accumulator.RecordGasStop(z, radius)
		}
	}
}
