package geometry

import "encoding/json"

// VolumeID is the stable index of a volume in its registry.
type VolumeID int64

// Role of a volume inside the configuration.
type Role string

// Volume roles. Exactly one volume per configuration is scoring.
const (
	RoleOrdinary Role = "ordinary"
	RoleScoring  Role = "scoring"
)

// Volume represent a discrete target layer a particle may traverse or
// stop within. Volumes are created during geometry build, owned by
// their registry and immutable after construction.
type Volume struct {
	ID        VolumeID `json:"id"`
	Name      string   `json:"name"`
	Material  Material `json:"material"`
	CenterZ   float64  `json:"centerZ"`
	Thickness float64  `json:"thickness"`
	Role      Role     `json:"role"`
}

// Registry is the ordered list of target volumes in construction
// order. Insertion order is the index used by every downstream
// consumer; ids are never reused or reordered after build.
type Registry struct {
	volumes []*Volume
}

// Register appends the volume and assigns its stable id.
func (r *Registry) Register(v *Volume) VolumeID {
	v.ID = VolumeID(len(r.volumes))
	r.volumes = append(r.volumes, v)
	return v.ID
}

// Len returns the number of registered target volumes.
func (r *Registry) Len() int {
	return len(r.volumes)
}

// Volume returns the n-th target volume, or nil if out of range.
func (r *Registry) Volume(n int) *Volume {
	if n < 0 || n >= len(r.volumes) {
		return nil
	}
	return r.volumes[n]
}

// Volumes returns the registered volumes in construction order.
// The returned slice must not be mutated.
func (r *Registry) Volumes() []*Volume {
	return r.volumes
}

// Unresolved is returned by Resolve for volumes absent from the
// registry. Stopping in open space or in the gas region is a normal,
// expected outcome, not an error.
const Unresolved = -1

// Resolve maps a volume identity to its registry index. Two distinct
// volumes with identical attributes are still distinct; the scan
// compares identities, not values.
func (r *Registry) Resolve(v *Volume) int {
	for i, registered := range r.volumes {
		if registered == v {
			return i
		}
	}
	return Unresolved
}

// MarshalJSON serializes the registry as the plain volume list.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.volumes)
}
