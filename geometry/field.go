package geometry

// FieldScope tells how far a field region reaches.
type FieldScope string

// Field scopes. Moderation-style variants steer the whole flight path
// with a global field; converter-style variants scope the field to the
// gas region only, so secondaries crossing the dense converter stack
// stay undeflected.
const (
	FieldScopeGlobal FieldScope = "global"
	FieldScopeLocal  FieldScope = "local"
)

// FieldRegion is a uniform deflecting field over a spatial scope,
// owned by the DetectorConfiguration it applies to. There is no
// ambient process-wide field registry.
type FieldRegion struct {
	// Value is the field vector in tesla.
	Value Vec3D `json:"value"`

	Scope FieldScope `json:"scope"`

	// Volume the field is scoped to when Scope is local, nil otherwise.
	Volume *Volume `json:"-"`
}

// globalField builds a +Z steering field covering the whole world.
func globalField(tesla float64) FieldRegion {
	return FieldRegion{
		Value: Vec3D{Z: tesla},
		Scope: FieldScopeGlobal,
	}
}

// localField builds a +Z steering field scoped to one volume.
func localField(tesla float64, volume *Volume) FieldRegion {
	return FieldRegion{
		Value:  Vec3D{Z: tesla},
		Scope:  FieldScopeLocal,
		Volume: volume,
	}
}
