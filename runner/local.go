// Package runner drives the diagnostics hook contract with a
// deterministic synthetic beam. It stands in for the external
// transport engine in demos and end-to-end tests; it samples where
// muons appear and stop, it does not model physics.
package runner

import (
	"math/rand"

	conf "github.com/yaptide/activetarget/config"
	"github.com/yaptide/activetarget/geometry"
	"github.com/yaptide/activetarget/run"
	"github.com/yaptide/activetarget/track"
)

var log = conf.NamedLogger("runner")

// Local drives one full run through a run.Context.
type Local struct {
	// Events to generate. Each event injects one primary.
	Events int

	// Seed of the sampling source, so runs are reproducible.
	Seed int64

	// MuonYield is the fraction of events producing a muon.
	MuonYield float64
}

// NewLocal creates a runner with the default beam-on settings.
func NewLocal(events int, seed int64) Local {
	return Local{
		Events:    events,
		Seed:      seed,
		MuonYield: 0.7,
	}
}

// Run generates Events synthetic events against the context's
// configuration and flushes the diagnostics. Returns the number of
// retained events.
func (l Local) Run(context *run.Context) (int, error) {
	rng := rand.New(rand.NewSource(l.Seed))
	configuration := context.Configuration()

	if err := context.BeginRun(); err != nil {
		return 0, err
	}

	retained := 0
	for event := 0; event < l.Events; event++ {
		context.BeginEvent()

		if rng.Float64() < l.MuonYield {
			l.generateMuon(context, configuration, rng, event+1)
		}

		if context.EndEvent() {
			retained++
		}
	}

	log.Infof("Generated %d events, retained %d", l.Events, retained)
	return retained, context.EndRun()
}

// generateMuon plays one muon track through the hooks: creation in the
// scoring volume, a terminal step in a sampled stop volume.
func (l Local) generateMuon(
	context *run.Context,
	configuration *geometry.DetectorConfiguration,
	rng *rand.Rand,
	trackID int,
) {
	particle := track.ParticleMuonMinus
	if rng.Float64() < 0.5 {
		particle = track.ParticleMuonPlus
	}
	energy := 5 + rng.Float64()*50

	vertex := geometry.Point{Z: configuration.Scoring.CenterZ}
	context.TrackStarted(track.TrackInfo{
		Particle:       particle,
		TrackID:        trackID,
		KineticEnergy:  energy,
		Position:       vertex,
		CreatorProcess: "Decay",
	})

	context.Step(track.StepRecord{
		Particle:      particle,
		TrackID:       trackID,
		Position:      vertex,
		KineticEnergy: energy,
		StepNumber:    1,
		Volume:        configuration.Scoring,
	})

	stopVolume, stopZ := l.sampleStop(configuration, rng)
	stop := geometry.Point{
		X: rng.NormFloat64() * 2,
		Y: rng.NormFloat64() * 2,
		Z: stopZ,
	}
	context.Step(track.StepRecord{
		Particle:   particle,
		TrackID:    trackID,
		Position:   stop,
		StepNumber: 2,
		Terminal:   true,
		Volume:     stopVolume,
	})

	context.TrackEnded(track.TrackInfo{
		Particle: particle,
		TrackID:  trackID,
		Position: stop,
	})
}

// sampleStop picks a stop location: a registered target layer, the gas
// region when the variant has one, or open space.
func (l Local) sampleStop(
	configuration *geometry.DetectorConfiguration,
	rng *rand.Rand,
) (*geometry.Volume, float64) {
	targets := configuration.Targets
	choices := targets.Len() + 1 // open space
	if configuration.Gas != nil {
		choices++
	}

	choice := rng.Intn(choices)
	switch {
	case choice < targets.Len():
		volume := targets.Volume(choice)
		return volume, volume.CenterZ
	case configuration.Gas != nil && choice == targets.Len():
		gas := configuration.Gas
		return gas.Volume, gas.ZStart + rng.Float64()*(gas.ZEnd-gas.ZStart)
	default:
		return nil, -150 + rng.Float64()*300
	}
}
