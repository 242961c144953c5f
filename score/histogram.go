// Package score accumulates run-long muon diagnostics into
// fixed-shape histograms and writes them out at run end.
package score

import "encoding/json"

// Histogram is a fixed-bin, fixed-range, append-only counter. Shape is
// fixed at creation; counts are never resized or reset mid-run.
// Samples outside [Min, Max) land in the underflow/overflow counters
// so no fill is ever silently lost.
type Histogram struct {
	Name      string  `json:"name"`
	Bins      int     `json:"bins"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Counts    []int64 `json:"counts"`
	Underflow int64   `json:"underflow"`
	Overflow  int64   `json:"overflow"`
	Entries   int64   `json:"entries"`
}

// NewHistogram creates an empty histogram of the given shape.
func NewHistogram(name string, bins int, min, max float64) *Histogram {
	return &Histogram{
		Name:   name,
		Bins:   bins,
		Min:    min,
		Max:    max,
		Counts: make([]int64, bins),
	}
}

// Fill appends one sample.
func (h *Histogram) Fill(value float64) {
	h.Entries++
	if value < h.Min {
		h.Underflow++
		return
	}
	if value >= h.Max {
		h.Overflow++
		return
	}
	bin := int(float64(h.Bins) * (value - h.Min) / (h.Max - h.Min))
	if bin >= h.Bins {
		// Values just below Max can round up to Bins in the
		// float math above. They belong to the last bin.
		bin = h.Bins - 1
	}
	h.Counts[bin]++
}

// Total returns the number of in-range samples.
func (h *Histogram) Total() int64 {
	var total int64
	for _, count := range h.Counts {
		total += count
	}
	return total
}

// BinCenter returns the center value of the n-th bin.
func (h *Histogram) BinCenter(n int) float64 {
	width := (h.Max - h.Min) / float64(h.Bins)
	return h.Min + (float64(n)+0.5)*width
}

// DiagnosticsSet is the named collection of histograms accumulated
// over one run. Booking order is preserved in the serialized artifact.
type DiagnosticsSet struct {
	histograms []*Histogram
	byName     map[string]*Histogram
}

// NewDiagnosticsSet constructor.
func NewDiagnosticsSet() *DiagnosticsSet {
	return &DiagnosticsSet{
		byName: make(map[string]*Histogram),
	}
}

// Book creates a histogram with its permanent shape. Booking the same
// name twice is a programming error.
func (s *DiagnosticsSet) Book(name string, bins int, min, max float64) *Histogram {
	if _, exists := s.byName[name]; exists {
		panic("score: histogram " + name + " booked twice")
	}
	histogram := NewHistogram(name, bins, min, max)
	s.histograms = append(s.histograms, histogram)
	s.byName[name] = histogram
	return histogram
}

// Histogram returns the named histogram, or nil if absent.
func (s *DiagnosticsSet) Histogram(name string) *Histogram {
	return s.byName[name]
}

// Histograms returns the booked histograms in booking order.
func (s *DiagnosticsSet) Histograms() []*Histogram {
	return s.histograms
}

// MarshalJSON serializes the set as the persisted artifact layout.
func (s *DiagnosticsSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Histograms []*Histogram `json:"histograms"`
	}{
		Histograms: s.histograms,
	})
}
