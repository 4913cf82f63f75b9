// Package material describes crystals for the empirical pseudopotential
// method and holds them in an explicitly constructed, read-only Registry.
//
// A Material carries the lattice constant (Å), the Bravais lattice, the
// atomic offset τ of the two-atom basis, the symmetric and antisymmetric
// pseudopotential form factors (Ry) tabulated by squared reciprocal-vector
// magnitude |G|² (units of (2π/a)²), optional spin-orbit strengths and the
// number of valence electrons.
//
// Builtin returns a fresh registry of the Cohen and Bergstresser (1966)
// diamond and zincblende table. There is no package-level registry: callers
// construct one and pass it to whatever needs it.
//
//	reg := material.Builtin()
//	si, err := reg.Lookup("Si")
//	if err != nil { ... }
//	vs, va := si.FormFactor(3) // -0.21, 0
package material
