// Package basis enumerates the reciprocal-lattice plane waves used to expand
// an empirical pseudopotential Hamiltonian.
//
// Vectors are integer triples in units of 2π/a. Which triples belong to the
// reciprocal lattice depends on the direct lattice:
//
//	FCC (diamond, zincblende) → reciprocal BCC: all-odd or all-even triples
//	BCC                       → reciprocal FCC: even coordinate sum
//	SimpleCubic               → every integer triple
//
// Generate keeps whole shells of equal |G|², sorted by increasing magnitude,
// so the star of every kept vector is complete and the set is closed under
// negation.
//
//	set, err := basis.Generate(10, basis.FCC)
//	// set.Len() == 169 for shells |G|² ∈ {0,3,4,8,11,12,16,19,20,24,27}
package basis
