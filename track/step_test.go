package track

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaptide/activetarget/geometry"
	"github.com/yaptide/activetarget/score"
)

func newTestPipeline(t *testing.T, variant string) (*geometry.DetectorConfiguration, *score.Accumulator, *EventFilter, *StepClassifier) {
	t.Helper()

	configuration, err := geometry.NewBuilder(geometry.DefaultParams()).Configure(variant)
	require.NoError(t, err)

	accumulator := score.NewAccumulator(score.Options{
		OutputFile: filepath.Join(t.TempDir(), "muon_output.json"),
	})
	require.NoError(t, accumulator.BeginRun())

	filter := &EventFilter{}
	filter.Reset()

	return configuration, accumulator, filter, NewStepClassifier(configuration, accumulator, filter)
}

func TestClassifierCreationAndStop(t *testing.T) {
	configuration, accumulator, filter, classifier := newTestPipeline(t, geometry.VariantCarbonStack)

	classifier.OnStep(StepRecord{
		Particle:      ParticleMuonMinus,
		TrackID:       1,
		Position:      geometry.Point{Z: -24},
		KineticEnergy: 55,
		StepNumber:    1,
	})
	classifier.OnStep(StepRecord{
		Particle:   ParticleMuonMinus,
		TrackID:    1,
		Position:   geometry.Point{X: 3, Y: 4, Z: 0},
		StepNumber: 7,
		Terminal:   true,
		Volume:     configuration.Targets.Volume(2),
	})

	set := accumulator.Set()
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonEnergy).Counts[27], "55 MeV lands in bin 27")
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopRadius).Counts[10], "radius sqrt(3²+4²)=5 lands in bin 10")
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopTarget).Counts[2])
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopZ).Total())
	assert.True(t, filter.Decision(), "creation signal latches retention")
}

func TestClassifierIgnoresOtherSpecies(t *testing.T) {
	_, accumulator, filter, classifier := newTestPipeline(t, geometry.VariantCarbonStack)

	for _, particle := range []string{"proton", "pion_pi_plus", "electron", "gamma"} {
		classifier.OnStep(StepRecord{
			Particle:      particle,
			Position:      geometry.Point{Z: 0},
			KineticEnergy: 100,
			StepNumber:    1,
			Terminal:      true,
		})
	}

	assert.Equal(t, int64(0), accumulator.Set().Histogram(score.HistMuonEnergy).Entries)
	assert.Equal(t, int64(0), accumulator.Set().Histogram(score.HistMuonStopZ).Entries)
	assert.False(t, filter.Decision())
}

func TestClassifierUnresolvedStop(t *testing.T) {
	_, accumulator, _, classifier := newTestPipeline(t, geometry.VariantCarbonStack)

	// Stopping in open space is normal: z and radius samples are
	// recorded, only the target index sample is suppressed.
	classifier.OnStep(StepRecord{
		Particle:   ParticleMuonPlus,
		Position:   geometry.Point{X: 1, Y: 1, Z: 80},
		StepNumber: 3,
		Terminal:   true,
		Volume:     nil,
	})

	set := accumulator.Set()
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopZ).Entries)
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopRadius).Entries)
	assert.Equal(t, int64(0), set.Histogram(score.HistMuonStopTarget).Entries)
}

func TestClassifierStopTargetExactCount(t *testing.T) {
	configuration, accumulator, _, classifier := newTestPipeline(t, geometry.VariantCarbonStack)

	const terminations = 25
	for i := 0; i < terminations; i++ {
		volume := configuration.Targets.Volume(i % configuration.Targets.Len())
		classifier.OnStep(StepRecord{
			Particle:   ParticleMuonMinus,
			Position:   geometry.Point{Z: volume.CenterZ},
			StepNumber: 2,
			Terminal:   true,
			Volume:     volume,
		})
	}

	assert.Equal(t, int64(terminations), accumulator.Set().Histogram(score.HistMuonStopTarget).Total(),
		"no double counting, no drops")
}

func TestClassifierGasRegionStop(t *testing.T) {
	configuration, accumulator, _, classifier := newTestPipeline(t, geometry.VariantCompactConverter)
	require.NotNil(t, configuration.Gas)

	classifier.OnStep(StepRecord{
		Particle:   ParticleMuonMinus,
		Position:   geometry.Point{X: 2, Y: 0, Z: configuration.Gas.ZCenter},
		StepNumber: 5,
		Terminal:   true,
		Volume:     configuration.Gas.Volume,
	})

	set := accumulator.Set()
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopZGas).Entries)
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopRadiusGas).Entries)
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopZ).Entries)
	// The gas volume is not a registered target.
	assert.Equal(t, int64(0), set.Histogram(score.HistMuonStopTarget).Entries)
}

func TestTrackLoggerSecondaryStopZ(t *testing.T) {
	accumulator := score.NewAccumulator(score.Options{
		OutputFile:       filepath.Join(t.TempDir(), "muon_output.json"),
		RecordTrackStopZ: true,
	})
	require.NoError(t, accumulator.BeginRun())

	logger := NewLogger(accumulator)
	logger.OnTrackStart(TrackInfo{Particle: ParticleMuonMinus, TrackID: 1, KineticEnergy: 20})
	logger.OnTrackEnd(TrackInfo{Particle: ParticleMuonMinus, TrackID: 1, Position: geometry.Point{Z: -40}})
	logger.OnTrackEnd(TrackInfo{Particle: "proton", TrackID: 2, Position: geometry.Point{Z: 10}})

	assert.Equal(t, int64(1), accumulator.Set().Histogram(score.HistMuonStopZTrack).Entries)
}
