package geometry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Variant tags accepted by Builder.Configure.
const (
	VariantCarbonStack       = "carbonStack"
	VariantAlternatingLayers = "alternatingLayers"
	VariantCompactConverter  = "compactConverter"
	VariantGradientConverter = "gradientConverter"
)

// Variants lists the supported variant tags.
var Variants = []string{
	VariantCarbonStack,
	VariantAlternatingLayers,
	VariantCompactConverter,
	VariantGradientConverter,
}

// StackParams describe the carbon plate stack. Lengths in mm, field in
// tesla.
type StackParams struct {
	Plates    int     `yaml:"plates"`
	Thickness float64 `yaml:"thickness"`
	Gap       float64 `yaml:"gap"`
	Field     float64 `yaml:"field"`
}

// AlternatingParams describe the tungsten/graphite absorber-moderator
// sandwich. Layers counts absorber+moderator pairs.
type AlternatingParams struct {
	Layers             int     `yaml:"layers"`
	AbsorberThickness  float64 `yaml:"absorberThickness"`
	ModeratorThickness float64 `yaml:"moderatorThickness"`
	Field              float64 `yaml:"field"`
}

// ConverterParams describe a muon production target: a thin graphite
// layer hit by the beam, followed by tungsten converters and the
// downstream D-T gas region.
type ConverterParams struct {
	TargetZ            float64 `yaml:"targetZ"`
	TargetThickness    float64 `yaml:"targetThickness"`
	Converters         int     `yaml:"converters"`
	ConverterThickness float64 `yaml:"converterThickness"`
	Gap                float64 `yaml:"gap"`
	GasOffset          float64 `yaml:"gasOffset"`
	GasThickness       float64 `yaml:"gasThickness"`
	Field              float64 `yaml:"field"`
}

// GradientParams describe the decay-friendly open target: converter
// thickness shrinks and air gaps widen downstream, giving pions room
// to decay before the next plate.
type GradientParams struct {
	TargetZ         float64 `yaml:"targetZ"`
	TargetThickness float64 `yaml:"targetThickness"`
	Converters      int     `yaml:"converters"`
	FirstThickness  float64 `yaml:"firstThickness"`
	LastThickness   float64 `yaml:"lastThickness"`
	FirstGap        float64 `yaml:"firstGap"`
	LastGap         float64 `yaml:"lastGap"`
	GasOffset       float64 `yaml:"gasOffset"`
	GasThickness    float64 `yaml:"gasThickness"`
	Field           float64 `yaml:"field"`
}

// Params bundle the parameters of every variant.
type Params struct {
	CarbonStack       StackParams       `yaml:"carbonStack"`
	AlternatingLayers AlternatingParams `yaml:"alternatingLayers"`
	CompactConverter  ConverterParams   `yaml:"compactConverter"`
	GradientConverter GradientParams    `yaml:"gradientConverter"`
}

// DefaultParams returns the built-in variant parameters.
func DefaultParams() Params {
	return Params{
		CarbonStack: StackParams{
			Plates:    5,
			Thickness: 2.0,
			Gap:       10.0,
			Field:     1.0,
		},
		AlternatingLayers: AlternatingParams{
			Layers:             5,
			AbsorberThickness:  1.0,
			ModeratorThickness: 2.0,
			Field:              1.0,
		},
		CompactConverter: ConverterParams{
			TargetZ:            -100.0,
			TargetThickness:    1.0,
			Converters:         5,
			ConverterThickness: 3.0,
			Gap:                1.0,
			GasOffset:          20.0,
			GasThickness:       40.0,
			Field:              1.0,
		},
		GradientConverter: GradientParams{
			TargetZ:         -100.0,
			TargetThickness: 1.0,
			Converters:      5,
			FirstThickness:  3.0,
			LastThickness:   1.0,
			FirstGap:        4.0,
			LastGap:         20.0,
			GasOffset:       20.0,
			GasThickness:    40.0,
			Field:           1.0,
		},
	}
}

// LoadParams reads variant parameter overrides from a YAML file on top
// of the defaults. Keys absent from the file keep their default value.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()

	content, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read variant params: %w", err)
	}
	if err := yaml.Unmarshal(content, &params); err != nil {
		return params, fmt.Errorf("parse variant params %s: %w", path, err)
	}
	return params, nil
}
