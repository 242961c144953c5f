package geometry

import (
	"fmt"

	conf "github.com/yaptide/activetarget/config"
)

var log = conf.NamedLogger("geometry")

// Builder constructs one of the parametric detector variants. The
// shared layout rule places layer i at
//
//	center(i) = center(i-1) + thickness(i-1)/2 + gap + thickness(i)/2
//
// which guarantees zero overlap whenever gap >= 0. Every constructed
// layer registers into the target registry in construction order.
type Builder struct {
	params Params
}

// NewBuilder creates a builder using the given variant parameters.
func NewBuilder(params Params) *Builder {
	return &Builder{params: params}
}

// Configure builds the named variant. It fails with a
// *ConfigurationError when the tag is unrecognized or a required base
// material is unavailable; the failure is fatal by design and must
// abort before any event processing begins.
func (b *Builder) Configure(variant string) (*DetectorConfiguration, error) {
	var configuration *DetectorConfiguration
	var err error

	switch variant {
	case VariantCarbonStack:
		configuration, err = b.constructCarbonStack()
	case VariantAlternatingLayers:
		configuration, err = b.constructAlternatingLayers()
	case VariantCompactConverter:
		configuration, err = b.constructCompactConverter()
	case VariantGradientConverter:
		configuration, err = b.constructGradientConverter()
	default:
		return nil, newVariantError("unknown detector variant %q", variant)
	}
	if err != nil {
		return nil, err
	}

	logLayerSummary(configuration)
	return configuration, nil
}

// constructCarbonStack builds a centered stack of carbon plates
// separated by air gaps. The last plate is the scoring volume and a
// global +Z field steers the whole flight path.
func (b *Builder) constructCarbonStack() (*DetectorConfiguration, error) {
	p := b.params.CarbonStack

	carbon, err := FindPredefined(MaterialCarbon)
	if err != nil {
		return nil, err
	}

	registry := &Registry{}
	totalLength := float64(p.Plates)*p.Thickness + float64(p.Plates-1)*p.Gap
	centerZ := -totalLength/2 + p.Thickness/2

	var scoring *Volume
	for i := 0; i < p.Plates; i++ {
		plate := &Volume{
			Name:      fmt.Sprintf("Plate_%d", i),
			Material:  carbon,
			CenterZ:   centerZ,
			Thickness: p.Thickness,
			Role:      RoleOrdinary,
		}
		if i == p.Plates-1 {
			plate.Role = RoleScoring
			scoring = plate
		}
		registry.Register(plate)
		centerZ += p.Thickness + p.Gap
	}

	return &DetectorConfiguration{
		Variant: VariantCarbonStack,
		Targets: registry,
		Fields:  []FieldRegion{globalField(p.Field)},
		Scoring: scoring,
	}, nil
}

// constructAlternatingLayers builds tungsten absorber / graphite
// moderator pairs, anchored so the sandwich is centered on the origin.
// The last moderator is the scoring volume.
func (b *Builder) constructAlternatingLayers() (*DetectorConfiguration, error) {
	p := b.params.AlternatingLayers

	tungsten, err := FindPredefined(MaterialTungsten)
	if err != nil {
		return nil, err
	}
	graphite, err := FindPredefined(MaterialGraphite)
	if err != nil {
		return nil, err
	}

	registry := &Registry{}
	zPos := -float64(p.Layers) * (p.AbsorberThickness + p.ModeratorThickness) / 2

	var scoring *Volume
	for i := 0; i < p.Layers; i++ {
		absorber := &Volume{
			Name:      fmt.Sprintf("Tungsten_%d", i),
			Material:  tungsten,
			CenterZ:   zPos + p.AbsorberThickness/2,
			Thickness: p.AbsorberThickness,
			Role:      RoleOrdinary,
		}
		registry.Register(absorber)
		zPos += p.AbsorberThickness

		moderator := &Volume{
			Name:      fmt.Sprintf("Graphite_%d", i),
			Material:  graphite,
			CenterZ:   zPos + p.ModeratorThickness/2,
			Thickness: p.ModeratorThickness,
			Role:      RoleOrdinary,
		}
		if i == p.Layers-1 {
			moderator.Role = RoleScoring
			scoring = moderator
		}
		registry.Register(moderator)
		zPos += p.ModeratorThickness
	}

	return &DetectorConfiguration{
		Variant: VariantAlternatingLayers,
		Targets: registry,
		Fields:  []FieldRegion{globalField(p.Field)},
		Scoring: scoring,
	}, nil
}

// constructCompactConverter builds the high-density production target:
// a thin graphite layer the beam impacts, followed by closely packed
// tungsten converters and the D-T gas region. Only the gas region
// carries a steering field, so secondaries crossing the converter
// stack stay undeflected.
func (b *Builder) constructCompactConverter() (*DetectorConfiguration, error) {
	p := b.params.CompactConverter

	graphite, err := FindPredefined(MaterialGraphite)
	if err != nil {
		return nil, err
	}
	tungsten, err := FindPredefined(MaterialTungsten)
	if err != nil {
		return nil, err
	}

	registry := &Registry{}
	target := &Volume{
		Name:      "ProtonTarget",
		Material:  graphite,
		CenterZ:   p.TargetZ,
		Thickness: p.TargetThickness,
		Role:      RoleScoring,
	}
	registry.Register(target)

	centerZ := p.TargetZ
	thickness := p.TargetThickness
	for i := 0; i < p.Converters; i++ {
		centerZ += thickness/2 + p.Gap + p.ConverterThickness/2
		thickness = p.ConverterThickness

		registry.Register(&Volume{
			Name:      fmt.Sprintf("Converter_%d", i),
			Material:  tungsten,
			CenterZ:   centerZ,
			Thickness: p.ConverterThickness,
			Role:      RoleOrdinary,
		})
	}

	gas, err := appendGasRegion(centerZ+thickness/2, p.GasOffset, p.GasThickness)
	if err != nil {
		return nil, err
	}

	return &DetectorConfiguration{
		Variant: VariantCompactConverter,
		Targets: registry,
		Fields:  []FieldRegion{localField(p.Field, gas.Volume)},
		Scoring: target,
		Gas:     gas,
	}, nil
}

// constructGradientConverter builds the open, decay-friendly
// production target: converter thickness shrinks and air gaps widen
// downstream. Field policy matches the compact variant: gas-local
// only.
func (b *Builder) constructGradientConverter() (*DetectorConfiguration, error) {
	p := b.params.GradientConverter

	graphite, err := FindPredefined(MaterialGraphite)
	if err != nil {
		return nil, err
	}
	tungsten, err := FindPredefined(MaterialTungsten)
	if err != nil {
		return nil, err
	}

	registry := &Registry{}
	target := &Volume{
		Name:      "ProtonTarget",
		Material:  graphite,
		CenterZ:   p.TargetZ,
		Thickness: p.TargetThickness,
		Role:      RoleScoring,
	}
	registry.Register(target)

	centerZ := p.TargetZ
	thickness := p.TargetThickness
	for i := 0; i < p.Converters; i++ {
		converterThickness := interpolate(p.FirstThickness, p.LastThickness, i, p.Converters)
		gap := interpolate(p.FirstGap, p.LastGap, i, p.Converters)

		centerZ += thickness/2 + gap + converterThickness/2
		thickness = converterThickness

		registry.Register(&Volume{
			Name:      fmt.Sprintf("Converter_%d", i),
			Material:  tungsten,
			CenterZ:   centerZ,
			Thickness: converterThickness,
			Role:      RoleOrdinary,
		})
	}

	gas, err := appendGasRegion(centerZ+thickness/2, p.GasOffset, p.GasThickness)
	if err != nil {
		return nil, err
	}

	return &DetectorConfiguration{
		Variant: VariantGradientConverter,
		Targets: registry,
		Fields:  []FieldRegion{localField(p.Field, gas.Volume)},
		Scoring: target,
		Gas:     gas,
	}, nil
}

// appendGasRegion places the D-T gas volume at a fixed offset past the
// back face of the last registered layer. The gas volume is owned by
// the configuration, not registered: resolving a stop inside it yields
// Unresolved on purpose.
func appendGasRegion(lastLayerEnd, offset, thickness float64) (*GasRegion, error) {
	dtGas, err := FindPredefined(MaterialDTGas)
	if err != nil {
		return nil, err
	}

	center := lastLayerEnd + offset + thickness/2
	return &GasRegion{
		Volume: &Volume{
			Name:      "DTGas",
			Material:  dtGas,
			CenterZ:   center,
			Thickness: thickness,
			Role:      RoleOrdinary,
		},
		ZStart:  center - thickness/2,
		ZCenter: center,
		ZEnd:    center + thickness/2,
	}, nil
}

// interpolate walks value linearly from first to last over n steps.
func interpolate(first, last float64, i, n int) float64 {
	if n <= 1 {
		return first
	}
	return first + (last-first)*float64(i)/float64(n-1)
}

func logLayerSummary(configuration *DetectorConfiguration) {
	log.Infof("=== Target Layer Summary (%s) ===", configuration.Variant)
	for i, volume := range configuration.Targets.Volumes() {
		log.Infof("Target %d | Z = %.2f mm | Material = %s | Role = %s",
			i, volume.CenterZ, volume.Material.Name, volume.Role)
	}
	if configuration.Gas != nil {
		log.Infof("Gas region | Z = [%.2f, %.2f] mm | Material = %s",
			configuration.Gas.ZStart, configuration.Gas.ZEnd, configuration.Gas.Volume.Material.Name)
	}
}
