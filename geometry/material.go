package geometry

// Material defines the medium a volume is made of.
type Material struct {
	Name string `json:"name"`

	// Density of the medium in g/cm³.
	Density float64 `json:"density"`
}

// Predefined material names used by the built-in variants.
const (
	MaterialAir      = "air"
	MaterialCarbon   = "carbon"
	MaterialGraphite = "graphite"
	MaterialTungsten = "tungsten"
	MaterialDTGas    = "deuterium_tritium"
)

var predefinedMaterials = map[string]Material{
	MaterialAir:      {Name: MaterialAir, Density: 1.205e-3},
	MaterialCarbon:   {Name: MaterialCarbon, Density: 2.0},
	MaterialGraphite: {Name: MaterialGraphite, Density: 1.7},
	MaterialTungsten: {Name: MaterialTungsten, Density: 19.3},
	MaterialDTGas:    {Name: MaterialDTGas, Density: 2.0e-4},
}

// FindPredefined looks a base material up by name. A missing material
// makes the whole configuration unusable, so the builder treats the
// error as fatal.
func FindPredefined(name string) (Material, error) {
	material, found := predefinedMaterials[name]
	if !found {
		return Material{}, newMaterialError("predefined material %q not found", name)
	}
	return material, nil
}
