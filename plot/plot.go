// Package plot is the offline collaborator that turns the persisted
// diagnostics file into one plot per named histogram. It is a thin
// reader: histograms absent from the file are skipped, never fatal.
package plot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	conf "github.com/yaptide/activetarget/config"
	"github.com/yaptide/activetarget/score"
)

var log = conf.NamedLogger("plot")

// Range restricts the displayed axis of one plot.
type Range struct {
	Min float64
	Max float64
}

// DefaultRanges hold the per-quantity display ranges. Suggested ranges
// based on typical values; adjust as needed.
var DefaultRanges = map[string]Range{
	score.HistMuonEnergy:     {0, 30},     // MeV
	score.HistMuonStopZ:      {-120, -70}, // mm
	score.HistMuonStopTarget: {0, 5},      // target indices
	score.HistMuonStopRadius: {0, 10},     // mm
}

// DefaultNames lists the histograms the converter looks for.
var DefaultNames = []string{
	score.HistMuonEnergy,
	score.HistMuonStopZ,
	score.HistMuonStopTarget,
	score.HistMuonStopRadius,
	score.HistMuonStopZGas,
	score.HistMuonStopRadiusGas,
}

// File is the parsed diagnostics artifact.
type File struct {
	Histograms []*score.Histogram `json:"histograms"`
}

// Histogram returns the named histogram from the file, or nil.
func (f *File) Histogram(name string) *score.Histogram {
	for _, histogram := range f.Histograms {
		if histogram.Name == name {
			return histogram
		}
	}
	return nil
}

// ReadFile parses a diagnostics artifact.
func ReadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open diagnostics file: %w", err)
	}
	file := &File{}
	if err := json.Unmarshal(content, file); err != nil {
		return nil, fmt.Errorf("parse diagnostics file %s: %w", path, err)
	}
	return file, nil
}

// Result reports which plots were written and which names were absent
// from the file.
type Result struct {
	Written []string
	Skipped []string
}

// Convert renders one plot file per requested histogram found in the
// diagnostics artifact, restricted to its display range. Names absent
// from the file are logged and skipped; processing of the remaining
// histograms continues.
func Convert(histPath, outDir string, names []string, ranges map[string]Range) (Result, error) {
	file, err := ReadFile(histPath)
	if err != nil {
		return Result{}, err
	}

	result := Result{}
	for _, name := range names {
		histogram := file.Histogram(name)
		if histogram == nil {
			log.Warnf("Histogram %s not found.", name)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		displayRange, hasRange := ranges[name]
		outPath := filepath.Join(outDir, name+".txt")
		if err := os.WriteFile(outPath, []byte(render(histogram, displayRange, hasRange)), 0644); err != nil {
			return result, fmt.Errorf("write plot %s: %w", outPath, err)
		}
		result.Written = append(result.Written, name)
	}
	return result, nil
}

const plotWidth = 60

// render draws a fixed-width horizontal bar per bin inside the display
// range.
func render(h *score.Histogram, displayRange Range, hasRange bool) string {
	if !hasRange {
		displayRange = Range{Min: h.Min, Max: h.Max}
	}

	var shown []int
	var max int64
	for bin := 0; bin < h.Bins; bin++ {
		center := h.BinCenter(bin)
		if center < displayRange.Min || center > displayRange.Max {
			continue
		}
		shown = append(shown, bin)
		if h.Counts[bin] > max {
			max = h.Counts[bin]
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%g, %g)  entries=%d\n", h.Name, h.Min, h.Max, h.Entries)
	for _, bin := range shown {
		bar := 0
		if max > 0 {
			bar = int(h.Counts[bin] * plotWidth / max)
		}
		fmt.Fprintf(&b, "%10.2f | %-*s %d\n", h.BinCenter(bin), plotWidth, strings.Repeat("#", bar), h.Counts[bin])
	}
	return b.String()
}
