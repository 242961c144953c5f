package score

import (
	"encoding/json"
	"fmt"
	"os"

	conf "github.com/yaptide/activetarget/config"
)

var log = conf.NamedLogger("score")

// Histogram names of the persisted artifact.
const (
	HistMuonEnergy        = "MuonEnergy"
	HistMuonStopZ         = "MuonStopZ"
	HistMuonStopTarget    = "MuonStopTarget"
	HistMuonStopRadius    = "MuonStopRadius"
	HistMuonStopZGas      = "MuonStopZGas"
	HistMuonStopRadiusGas = "MuonStopRadiusGas"

	// HistMuonStopZTrack is the secondary stop-z path fed by the track
	// logger. Booked only when Options.RecordTrackStopZ is set.
	HistMuonStopZTrack = "MuonStopZTrack"
)

// Options configure an Accumulator.
type Options struct {
	// OutputFile receives the serialized diagnostics at run end.
	OutputFile string

	// RecordTrackStopZ books the secondary track-level stop-z
	// histogram in addition to the authoritative step-level one.
	RecordTrackStopZ bool
}

// Accumulator owns the diagnostics of one run: it books the fixed
// histogram set at run start, takes appends throughout and flushes the
// artifact at run end without clearing in-memory counts, so the run
// stays inspectable in-process after the file is written.
type Accumulator struct {
	options Options

	set  *DiagnosticsSet
	sink *os.File

	energy        *Histogram
	stopZ         *Histogram
	stopTarget    *Histogram
	stopRadius    *Histogram
	stopZGas      *Histogram
	stopRadiusGas *Histogram
	stopZTrack    *Histogram
}

// NewAccumulator constructor.
func NewAccumulator(options Options) *Accumulator {
	return &Accumulator{options: options}
}

// Set exposes the histograms for in-process inspection.
func (a *Accumulator) Set() *DiagnosticsSet {
	return a.set
}

// BeginRun books the histogram set with its permanent shapes and opens
// the output sink. Must be called exactly once, before any event.
func (a *Accumulator) BeginRun() error {
	if a.set != nil {
		panic("score: BeginRun called twice within one run")
	}

	log.Info("### Run started ###")

	a.set = NewDiagnosticsSet()
	a.energy = a.set.Book(HistMuonEnergy, 100, 0, 200)
	a.stopZ = a.set.Book(HistMuonStopZ, 100, -150, 150)
	a.stopTarget = a.set.Book(HistMuonStopTarget, 10, 0, 10)
	a.stopRadius = a.set.Book(HistMuonStopRadius, 100, 0, 50)
	a.stopZGas = a.set.Book(HistMuonStopZGas, 100, -150, 150)
	a.stopRadiusGas = a.set.Book(HistMuonStopRadiusGas, 100, 0, 50)
	if a.options.RecordTrackStopZ {
		a.stopZTrack = a.set.Book(HistMuonStopZTrack, 100, -150, 150)
	}

	sink, err := os.Create(a.options.OutputFile)
	if err != nil {
		return fmt.Errorf("open diagnostics sink: %w", err)
	}
	a.sink = sink
	return nil
}

// EndRun writes every histogram to the sink and closes it. Counts are
// deliberately NOT cleared: the artifact is persisted and the
// histograms remain available for continued in-process inspection.
func (a *Accumulator) EndRun() error {
	if a.sink == nil {
		panic("score: EndRun without BeginRun")
	}

	log.Info("### Run ended, saving diagnostics output... ###")

	encoder := json.NewEncoder(a.sink)
	encoder.SetIndent("", "\t")
	if err := encoder.Encode(a.set); err != nil {
		a.sink.Close()
		return fmt.Errorf("write diagnostics: %w", err)
	}
	if err := a.sink.Close(); err != nil {
		return fmt.Errorf("close diagnostics sink: %w", err)
	}
	a.sink = nil
	return nil
}

// RecordCreation appends a muon creation kinetic energy sample, in MeV.
func (a *Accumulator) RecordCreation(energy float64) {
	a.energy.Fill(energy)
}

// RecordStop appends the stop position samples, in mm.
func (a *Accumulator) RecordStop(z, radius float64) {
	a.stopZ.Fill(z)
	a.stopRadius.Fill(radius)
}

// RecordStopTarget appends the index of the target layer the muon
// stopped in.
func (a *Accumulator) RecordStopTarget(index int) {
	a.stopTarget.Fill(float64(index))
}

// RecordGasStop appends the gas-region stop position samples, in mm.
func (a *Accumulator) RecordGasStop(z, radius float64) {
	a.stopZGas.Fill(z)
	a.stopRadiusGas.Fill(radius)
}

// RecordTrackStop appends the secondary track-level stop-z sample.
// No-op unless the secondary path was enabled.
func (a *Accumulator) RecordTrackStop(z float64) {
	if a.stopZTrack == nil {
		return
	}
	a.stopZTrack.Fill(z)
}
