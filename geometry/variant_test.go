package geometry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParamsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.yaml")
	content := `
carbonStack:
  plates: 7
  gap: 5.0
compactConverter:
  gasThickness: 60.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	params, err := LoadParams(path)
	require.NoError(t, err)

	assert.Equal(t, 7, params.CarbonStack.Plates)
	assert.InDelta(t, 5.0, params.CarbonStack.Gap, 1e-9)
	// Keys absent from the file keep their defaults.
	assert.InDelta(t, 2.0, params.CarbonStack.Thickness, 1e-9)
	assert.InDelta(t, 60.0, params.CompactConverter.GasThickness, 1e-9)
	assert.Equal(t, DefaultParams().GradientConverter, params.GradientConverter)

	configuration, err := NewBuilder(params).Configure(VariantCarbonStack)
	require.NoError(t, err)
	assert.Equal(t, 7, configuration.Targets.Len())
}

func TestLoadParamsMissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadParamsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.yaml")
	require.NoError(t, os.WriteFile(path, []byte("carbonStack: ["), 0644))

	_, err := LoadParams(path)
	assert.Error(t, err)
}
