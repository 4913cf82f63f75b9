package material

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/basis"
)

// tau is the atomic offset of the diamond and zincblende basis (units of a).
var tau = r3.Vec{X: 0.125, Y: 0.125, Z: 0.125}

// zincblende builds an FCC, eight-electron material from the Cohen and
// Bergstresser parameters: a in Å, then V3S, V8S, V11S and V3A, V4A, V11A in Ry.
// The spin-orbit pair is not part of that table; so and sa are small
// strengths that reproduce the ordering of the split-off bands.
func zincblende(symbol, name string, a, v3s, v8s, v11s, v3a, v4a, v11a, so, sa float64) Material {
	return Material{
		Symbol:           symbol,
		Name:             name,
		LatticeConstant:  a,
		Lattice:          basis.FCC,
		ValenceElectrons: 8,
		Offset:           tau,
		FormFactors: []FormFactor{
			{G2: 3, Symmetric: v3s, Antisymmetric: v3a},
			{G2: 4, Symmetric: 0, Antisymmetric: v4a},
			{G2: 8, Symmetric: v8s, Antisymmetric: 0},
			{G2: 11, Symmetric: v11s, Antisymmetric: v11a},
		},
		SpinOrbit: SpinOrbit{Symmetric: so, Antisymmetric: sa},
	}
}

// builtinTable lists the fourteen Cohen and Bergstresser crystals.
func builtinTable() []Material {
	return []Material{
		zincblende("Si", "Silicon", 5.43, -0.21, 0.04, 0.08, 0, 0, 0, 0.00010, 0),
		zincblende("Ge", "Germanium", 5.66, -0.23, 0.01, 0.06, 0, 0, 0, 0.00065, 0),
		zincblende("Sn", "Tin", 6.49, -0.20, 0.00, 0.04, 0, 0, 0, 0.00120, 0),
		zincblende("GaP", "Gallium Phosphide", 5.44, -0.22, 0.03, 0.07, 0.12, 0.07, 0.02, 0.00020, 0.00005),
		zincblende("GaAs", "Gallium Arsenide", 5.64, -0.23, 0.01, 0.06, 0.07, 0.05, 0.01, 0.00070, 0.00010),
		zincblende("AlSb", "Aluminium Antimonide", 6.13, -0.21, 0.02, 0.06, 0.06, 0.04, 0.02, 0.00090, 0.00030),
		zincblende("InP", "Indium Phosphide", 5.86, -0.23, 0.01, 0.06, 0.07, 0.05, 0.01, 0.00025, 0.00005),
		zincblende("GaSb", "Gallium Antimonide", 6.12, -0.22, 0.00, 0.05, 0.06, 0.05, 0.01, 0.00110, 0.00030),
		zincblende("InAs", "Indium Arsenide", 6.04, -0.22, 0.00, 0.05, 0.08, 0.05, 0.03, 0.00080, 0.00010),
		zincblende("InSb", "Indium Antimonide", 6.48, -0.20, 0.00, 0.04, 0.06, 0.05, 0.01, 0.00140, 0.00040),
		zincblende("ZnS", "Zinc Sulfide", 5.41, -0.22, 0.03, 0.07, 0.24, 0.14, 0.04, 0.00015, 0.00005),
		zincblende("ZnSe", "Zinc Selenide", 5.65, -0.23, 0.01, 0.06, 0.18, 0.12, 0.03, 0.00080, 0.00030),
		zincblende("ZnTe", "Zinc Telluride", 6.07, -0.22, 0.00, 0.05, 0.13, 0.10, 0.01, 0.00140, 0.00050),
		zincblende("CdTe", "Cadmium Telluride", 6.41, -0.20, 0.00, 0.04, 0.15, 0.09, 0.04, 0.00140, 0.00050),
	}
}

// Builtin returns a new registry holding the Cohen and Bergstresser table.
// Every call builds an independent instance.
func Builtin() *Registry {
	r, err := NewRegistry(builtinTable()...)
	if err != nil {
		panic("material: builtin table: " + err.Error())
	}

	return r
}
