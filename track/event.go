// Package track classifies particle lifecycle callbacks reported by
// the transport engine: per-step scoring, per-event retention and
// per-track diagnostics for the tracked muon species.
package track

// EventFilter is the one-way per-event retention latch. Within one
// event it only moves Unmarked -> Retain; the decision read at event
// end tells the engine whether to preserve the event for inspection.
//
// Reset must be invoked exactly once per event, before any step
// callback of that event. Misuse is a programming error in the
// integrating engine and fails loudly rather than producing wrong
// counts.
type EventFilter struct {
	armed  bool
	retain bool
}

// Reset arms the filter for a new event and clears the latch.
func (f *EventFilter) Reset() {
	if f.armed {
		panic("track: EventFilter.Reset called twice within one event")
	}
	f.armed = true
	f.retain = false
}

// Retain latches the event for retention. Idempotent: further signals
// within the same event leave the state unchanged.
func (f *EventFilter) Retain() {
	if !f.armed {
		panic("track: EventFilter.Retain before Reset")
	}
	f.retain = true
}

// Decision reports whether the event is to be kept and closes the
// event, so the next Reset is legal again.
func (f *EventFilter) Decision() bool {
	if !f.armed {
		panic("track: EventFilter.Decision before Reset")
	}
	f.armed = false
	return f.retain
}
