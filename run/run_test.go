package run

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaptide/activetarget/geometry"
	"github.com/yaptide/activetarget/score"
	"github.com/yaptide/activetarget/track"
)

func newTestContext(t *testing.T, variant string) *Context {
	t.Helper()

	configuration, err := BuildGeometry(geometry.DefaultParams(), variant)
	require.NoError(t, err)

	return New(configuration, score.Options{
		OutputFile: filepath.Join(t.TempDir(), "muon_output.json"),
	})
}

func TestContextFullLifecycle(t *testing.T) {
	context := newTestContext(t, geometry.VariantCarbonStack)
	configuration := context.Configuration()

	require.NoError(t, context.BeginRun())

	// Event with a muon: retained.
	context.BeginEvent()
	context.TrackStarted(track.TrackInfo{
		Particle:      track.ParticleMuonMinus,
		TrackID:       1,
		KineticEnergy: 55,
	})
	context.Step(track.StepRecord{
		Particle:      track.ParticleMuonMinus,
		TrackID:       1,
		KineticEnergy: 55,
		StepNumber:    1,
	})
	context.Step(track.StepRecord{
		Particle:   track.ParticleMuonMinus,
		TrackID:    1,
		Position:   geometry.Point{X: 3, Y: 4, Z: 0},
		StepNumber: 2,
		Terminal:   true,
		Volume:     configuration.Targets.Volume(2),
	})
	context.TrackEnded(track.TrackInfo{
		Particle: track.ParticleMuonMinus,
		TrackID:  1,
		Position: geometry.Point{Z: 0},
	})
	assert.True(t, context.EndEvent())

	// Event without a muon: not retained.
	context.BeginEvent()
	context.TrackStarted(track.TrackInfo{Particle: "proton", TrackID: 1})
	context.Step(track.StepRecord{Particle: "proton", TrackID: 1, StepNumber: 1})
	context.TrackEnded(track.TrackInfo{Particle: "proton", TrackID: 1})
	assert.False(t, context.EndEvent())

	require.NoError(t, context.EndRun())

	// Histograms stay inspectable after the flush.
	set := context.Diagnostics()
	require.NotNil(t, set)
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonEnergy).Entries)
	assert.Equal(t, int64(1), set.Histogram(score.HistMuonStopTarget).Counts[2])
}

func TestContextHookOrderViolations(t *testing.T) {
	t.Run("event before run", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		assert.Panics(t, func() { context.BeginEvent() })
	})

	t.Run("step outside event", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		assert.Panics(t, func() { context.Step(track.StepRecord{}) })
	})

	t.Run("nested event", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		context.BeginEvent()
		assert.Panics(t, func() { context.BeginEvent() })
	})

	t.Run("run end inside event", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		context.BeginEvent()
		assert.Panics(t, func() { context.EndRun() })
	})

	t.Run("event end without begin", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		assert.Panics(t, func() { context.EndEvent() })
	})

	t.Run("step outside track", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		context.BeginEvent()
		assert.Panics(t, func() { context.Step(track.StepRecord{}) })
	})

	t.Run("step after track end", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		context.BeginEvent()
		context.TrackStarted(track.TrackInfo{TrackID: 1})
		context.TrackEnded(track.TrackInfo{TrackID: 1})
		assert.Panics(t, func() { context.Step(track.StepRecord{TrackID: 1}) })
	})

	t.Run("overlapping tracks", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		context.BeginEvent()
		context.TrackStarted(track.TrackInfo{TrackID: 1})
		assert.Panics(t, func() { context.TrackStarted(track.TrackInfo{TrackID: 2}) })
	})

	t.Run("track end without start", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		context.BeginEvent()
		assert.Panics(t, func() { context.TrackEnded(track.TrackInfo{TrackID: 1}) })
	})

	t.Run("event end with open track", func(t *testing.T) {
		context := newTestContext(t, geometry.VariantCarbonStack)
		require.NoError(t, context.BeginRun())
		context.BeginEvent()
		context.TrackStarted(track.TrackInfo{TrackID: 1})
		assert.Panics(t, func() { context.EndEvent() })
	})
}

func TestContextIndependentInstances(t *testing.T) {
	// Workers parallelizing event batches own fully independent
	// component instances; one context's run never leaks into another.
	first := newTestContext(t, geometry.VariantCarbonStack)
	second := newTestContext(t, geometry.VariantCarbonStack)

	require.NoError(t, first.BeginRun())
	require.NoError(t, second.BeginRun())

	first.BeginEvent()
	first.TrackStarted(track.TrackInfo{Particle: track.ParticleMuonPlus, TrackID: 1})
	first.Step(track.StepRecord{
		Particle:      track.ParticleMuonPlus,
		TrackID:       1,
		KineticEnergy: 10,
		StepNumber:    1,
	})
	first.TrackEnded(track.TrackInfo{Particle: track.ParticleMuonPlus, TrackID: 1})
	assert.True(t, first.EndEvent())

	second.BeginEvent()
	assert.False(t, second.EndEvent())

	require.NoError(t, first.EndRun())
	require.NoError(t, second.EndRun())

	assert.Equal(t, int64(1), first.Diagnostics().Histogram(score.HistMuonEnergy).Entries)
	assert.Equal(t, int64(0), second.Diagnostics().Histogram(score.HistMuonEnergy).Entries)
}

func TestBuildGeometryUnknownVariant(t *testing.T) {
	_, err := BuildGeometry(geometry.DefaultParams(), "warpDrive")
	require.Error(t, err)

	configurationErr := &geometry.ConfigurationError{}
	assert.ErrorAs(t, err, &configurationErr)
}
