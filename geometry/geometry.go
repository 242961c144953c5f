// Package geometry assembles layered active-target detector
// configurations: stacks of absorber/moderator plates placed along the
// beam axis, an optional downstream D-T gas region and the magnetic
// field regions steering muons through them.
package geometry

// Point represent a point in 3D space, in mm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3D represent a 3D vector.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DetectorConfiguration is the complete, immutable product of a
// Builder: the registered target layers, the scoring volume, the field
// regions and the optional gas region. It is built exactly once per
// run, before any event is processed, and read-only afterwards.
type DetectorConfiguration struct {
	Variant string        `json:"variant"`
	Targets *Registry     `json:"targets"`
	Fields  []FieldRegion `json:"fields"`

	// Scoring is the single instrumented volume of the configuration.
	// For symmetric stacks it is the last layer, for converter
	// variants the upstream production target.
	Scoring *Volume `json:"-"`

	// Gas is nil for variants without a downstream gas region.
	// The gas volume is owned here and is not part of Targets.
	Gas *GasRegion `json:"gas,omitempty"`
}

// GasRegion is the downstream D-T volume where stopped muons are
// expected to trigger fusion. Bounds are kept explicit because
// histogram ranges and stopping diagnostics are expressed in them.
type GasRegion struct {
	Volume  *Volume `json:"volume"`
	ZStart  float64 `json:"zStart"`
	ZCenter float64 `json:"zCenter"`
	ZEnd    float64 `json:"zEnd"`
}
