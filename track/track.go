package track

import (
	"github.com/yaptide/activetarget/geometry"
	"github.com/yaptide/activetarget/score"
)

// TrackInfo describes one particle track at its start or end.
type TrackInfo struct {
	Particle string
	TrackID  int

	// KineticEnergy at creation, in MeV.
	KineticEnergy float64

	// Position is the vertex position on track start and the stop
	// position on track end, in mm.
	Position geometry.Point

	// CreatorProcess label. Empty for primaries.
	CreatorProcess string
}

// Logger is the secondary per-track hook: it emits human-readable
// creation and termination records for the tracked species and can
// feed the redundant track-level stop-z histogram.
type Logger struct {
	accumulator *score.Accumulator
}

// NewLogger constructor.
func NewLogger(accumulator *score.Accumulator) *Logger {
	return &Logger{accumulator: accumulator}
}

// OnTrackStart logs the creation record of a tracked muon.
func (l *Logger) OnTrackStart(info TrackInfo) {
	if !IsTrackedSpecies(info.Particle) {
		return
	}

	creator := info.CreatorProcess
	if creator == "" {
		creator = "Primary"
	}
	log.Infof("[MuonCreated] %s | Track ID: %d | Energy: %.2f MeV | Position: (%.2f, %.2f, %.2f) mm | Created by: %s",
		info.Particle, info.TrackID, info.KineticEnergy,
		info.Position.X, info.Position.Y, info.Position.Z, creator)
}

// OnTrackEnd logs the termination record of a tracked muon and appends
// the secondary stop-z sample when that path is enabled. The
// step-level classifier remains the authoritative stop scorer.
func (l *Logger) OnTrackEnd(info TrackInfo) {
	if !IsTrackedSpecies(info.Particle) {
		return
	}

	log.Infof("[MuonStopped] %s | Track ID: %d | Stopped at Z = %.2f mm",
		info.Particle, info.TrackID, info.Position.Z)

	l.accumulator.RecordTrackStop(info.Position.Z)
}
