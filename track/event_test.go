package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventFilterLatch(t *testing.T) {
	filter := &EventFilter{}

	filter.Reset()
	assert.False(t, filter.Decision(), "no creation signal leaves the event unmarked")

	filter.Reset()
	filter.Retain()
	assert.True(t, filter.Decision())

	// Monotonic within an event: further signals cannot unlatch.
	filter.Reset()
	filter.Retain()
	filter.Retain()
	assert.True(t, filter.Decision())

	// The latch does not leak into the next event.
	filter.Reset()
	assert.False(t, filter.Decision())
}

func TestEventFilterContractViolations(t *testing.T) {
	filter := &EventFilter{}

	assert.Panics(t, func() { filter.Retain() }, "retain before reset")
	assert.Panics(t, func() { filter.Decision() }, "decision before reset")

	filter.Reset()
	assert.Panics(t, func() { filter.Reset() }, "double reset within one event")
}
