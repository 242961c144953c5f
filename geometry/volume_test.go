package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	registry := &Registry{}
	carbon, err := FindPredefined(MaterialCarbon)
	require.NoError(t, err)

	var registered []*Volume
	for i := 0; i < 3; i++ {
		volume := &Volume{
			Name:      "Plate",
			Material:  carbon,
			CenterZ:   float64(i) * 12,
			Thickness: 2,
			Role:      RoleOrdinary,
		}
		id := registry.Register(volume)
		assert.Equal(t, VolumeID(i), id)
		registered = append(registered, volume)
	}

	for i, volume := range registered {
		assert.Equal(t, i, registry.Resolve(volume))
	}

	// A distinct volume with identical attributes is still distinct.
	twin := *registered[0]
	assert.Equal(t, Unresolved, registry.Resolve(&twin))
	assert.Equal(t, Unresolved, registry.Resolve(nil))
}

func TestRegistryVolumeOutOfRange(t *testing.T) {
	registry := &Registry{}
	registry.Register(&Volume{Name: "Plate_0"})

	assert.NotNil(t, registry.Volume(0))
	assert.Nil(t, registry.Volume(1))
	assert.Nil(t, registry.Volume(-1))
}

func TestFindPredefined(t *testing.T) {
	material, err := FindPredefined(MaterialTungsten)
	require.NoError(t, err)
	assert.Equal(t, MaterialTungsten, material.Name)
	assert.InDelta(t, 19.3, material.Density, 1e-9)

	_, err = FindPredefined("unobtainium")
	require.Error(t, err)
	configurationErr := &ConfigurationError{}
	assert.ErrorAs(t, err, &configurationErr)
}
