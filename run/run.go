// Package run wires one run's diagnostics components behind the
// callback contract the transport engine drives. The engine owns the
// only execution thread; hook order is
//
//	BeginRun -> { BeginEvent -> { TrackStarted { Step } TrackEnded } -> EndEvent } -> EndRun
//
// and every component instance belongs to exactly one Context, so
// engines parallelizing across event batches construct one Context per
// worker and merge histograms outside this module.
package run

import (
	"fmt"

	"github.com/yaptide/activetarget/geometry"
	"github.com/yaptide/activetarget/score"
	"github.com/yaptide/activetarget/track"
)

type phase int

const (
	phaseIdle phase = iota
	phaseRun
	phaseEvent
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseRun:
		return "run"
	case phaseEvent:
		return "event"
	}
	return "unknown"
}

// Context owns one independent instance of every diagnostics component
// for a single run. All hooks share it by construction, so no hook
// ever needs to recover another through ambient state.
type Context struct {
	configuration *geometry.DetectorConfiguration
	accumulator   *score.Accumulator
	filter        *track.EventFilter
	classifier    *track.StepClassifier
	tracks        *track.Logger

	phase   phase
	inTrack bool
}

// New creates the per-run context for an already built configuration.
func New(configuration *geometry.DetectorConfiguration, options score.Options) *Context {
	accumulator := score.NewAccumulator(options)
	filter := &track.EventFilter{}
	return &Context{
		configuration: configuration,
		accumulator:   accumulator,
		filter:        filter,
		classifier:    track.NewStepClassifier(configuration, accumulator, filter),
		tracks:        track.NewLogger(accumulator),
	}
}

// BuildGeometry constructs the named detector variant. It must be
// called exactly once, before the run loop; failure is fatal for the
// whole run.
func BuildGeometry(params geometry.Params, variant string) (*geometry.DetectorConfiguration, error) {
	return geometry.NewBuilder(params).Configure(variant)
}

// Configuration returns the detector configuration served by this run.
func (c *Context) Configuration() *geometry.DetectorConfiguration {
	return c.configuration
}

// Diagnostics exposes the accumulated histograms for in-process
// inspection, including after EndRun.
func (c *Context) Diagnostics() *score.DiagnosticsSet {
	return c.accumulator.Set()
}

// BeginRun books the histograms and opens the output sink.
func (c *Context) BeginRun() error {
	c.transition(phaseIdle, phaseRun, "BeginRun")
	return c.accumulator.BeginRun()
}

// BeginEvent resets the retention filter for a new event.
func (c *Context) BeginEvent() {
	c.transition(phaseRun, phaseEvent, "BeginEvent")
	c.filter.Reset()
}

// Step forwards one step record to the classifier.
func (c *Context) Step(record track.StepRecord) {
	c.require(phaseEvent, "Step")
	c.requireTrack(true, "Step")
	c.classifier.OnStep(record)
}

// TrackStarted forwards a track creation to the track logger.
func (c *Context) TrackStarted(info track.TrackInfo) {
	c.require(phaseEvent, "TrackStarted")
	c.requireTrack(false, "TrackStarted")
	c.inTrack = true
	c.tracks.OnTrackStart(info)
}

// TrackEnded forwards a track termination to the track logger.
func (c *Context) TrackEnded(info track.TrackInfo) {
	c.require(phaseEvent, "TrackEnded")
	c.requireTrack(true, "TrackEnded")
	c.inTrack = false
	c.tracks.OnTrackEnd(info)
}

// EndEvent closes the event and returns the retention decision.
func (c *Context) EndEvent() bool {
	c.requireTrack(false, "EndEvent")
	c.transition(phaseEvent, phaseRun, "EndEvent")
	return c.filter.Decision()
}

// EndRun flushes the diagnostics. The written histograms stay
// available through Diagnostics afterwards.
func (c *Context) EndRun() error {
	c.transition(phaseRun, phaseIdle, "EndRun")
	return c.accumulator.EndRun()
}

// transition asserts the documented hook order; violations are
// programming errors in the integrating engine and fail loudly
// instead of producing silently wrong counts.
func (c *Context) transition(from, to phase, hook string) {
	c.require(from, hook)
	c.phase = to
}

func (c *Context) require(expected phase, hook string) {
	if c.phase != expected {
		panic(fmt.Sprintf("run: %s called in phase %s, want %s", hook, c.phase, expected))
	}
}

// requireTrack asserts the per-track nesting inside an event: steps
// belong between TrackStarted and TrackEnded, and tracks never overlap.
func (c *Context) requireTrack(open bool, hook string) {
	if c.inTrack != open {
		if open {
			panic(fmt.Sprintf("run: %s called outside an open track", hook))
		}
		panic(fmt.Sprintf("run: %s called with a track still open", hook))
	}
}
