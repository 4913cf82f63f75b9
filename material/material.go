package material

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/basis"
)

// FormFactor is one tabulated Fourier coefficient pair of the crystal
// potential at squared magnitude G2 (units of (2π/a)²), in Rydberg.
type FormFactor struct {
	G2            int
	Symmetric     float64
	Antisymmetric float64
}

// SpinOrbit holds the symmetric and antisymmetric spin-orbit strengths (Ry).
type SpinOrbit struct {
	Symmetric     float64
	Antisymmetric float64
}

// Material is an immutable crystal descriptor. Values returned by a
// Registry own their slices, so callers may not alter registry contents.
type Material struct {
	Symbol           string
	Name             string
	LatticeConstant  float64       // Å
	Lattice          basis.Lattice // Bravais lattice of the direct crystal
	ValenceElectrons int           // per primitive cell
	Offset           r3.Vec        // τ, units of a; atoms sit at ±τ
	FormFactors      []FormFactor
	SpinOrbit        SpinOrbit
}

// FormFactor returns (Vs, Va) at |G|² = g2, or zeros when g2 is not tabulated.
func (m Material) FormFactor(g2 int) (vs, va float64) {
	for _, ff := range m.FormFactors {
		if ff.G2 == g2 {
			return ff.Symmetric, ff.Antisymmetric
		}
	}

	return 0, 0
}

// LatticeBohr returns the lattice constant in Bohr.
func (m Material) LatticeBohr() float64 { return m.LatticeConstant / BohrAngstrom }

// ReciprocalUnit returns 2π/a in 1/Bohr.
func (m Material) ReciprocalUnit() float64 { return 2 * math.Pi / m.LatticeBohr() }

// Centrosymmetric reports whether every antisymmetric coefficient is zero,
// which makes the spin-free Hamiltonian real.
func (m Material) Centrosymmetric() bool {
	for _, ff := range m.FormFactors {
		if ff.Antisymmetric != 0 {
			return false
		}
	}

	return m.SpinOrbit.Antisymmetric == 0
}

// ValenceBands returns the number of filled bands: two electrons per band
// without spin-orbit coupling, one per band once spin is explicit.
func (m Material) ValenceBands(spinOrbit bool) int {
	if spinOrbit {
		return m.ValenceElectrons
	}

	return m.ValenceElectrons / 2
}

// HasSpinOrbit reports whether any spin-orbit strength is non-zero.
func (m Material) HasSpinOrbit() bool {
	return m.SpinOrbit.Symmetric != 0 || m.SpinOrbit.Antisymmetric != 0
}

// Validate checks the descriptor. Errors wrap ErrInvalidMaterial.
func (m Material) Validate() error {
	switch {
	case m.Symbol == "":
		return fmt.Errorf("empty symbol: %w", ErrInvalidMaterial)
	case !(m.LatticeConstant > 0) || math.IsInf(m.LatticeConstant, 0):
		return fmt.Errorf("%s: lattice constant %g: %w", m.Symbol, m.LatticeConstant, ErrInvalidMaterial)
	case m.ValenceElectrons <= 0 || m.ValenceElectrons%2 != 0:
		return fmt.Errorf("%s: valence electrons %d must be positive and even: %w", m.Symbol, m.ValenceElectrons, ErrInvalidMaterial)
	}
	if !m.Lattice.Valid() {
		return fmt.Errorf("%s: %v: %w", m.Symbol, m.Lattice, ErrInvalidMaterial)
	}
	seen := make(map[int]struct{}, len(m.FormFactors))
	for _, ff := range m.FormFactors {
		if ff.G2 <= 0 {
			return fmt.Errorf("%s: form factor at |G|²=%d: %w", m.Symbol, ff.G2, ErrInvalidMaterial)
		}
		if _, dup := seen[ff.G2]; dup {
			return fmt.Errorf("%s: form factor |G|²=%d listed twice: %w", m.Symbol, ff.G2, ErrInvalidMaterial)
		}
		seen[ff.G2] = struct{}{}
		if !finite(ff.Symmetric) || !finite(ff.Antisymmetric) {
			return fmt.Errorf("%s: form factor |G|²=%d not finite: %w", m.Symbol, ff.G2, ErrInvalidMaterial)
		}
	}
	if !finite(m.SpinOrbit.Symmetric) || !finite(m.SpinOrbit.Antisymmetric) {
		return fmt.Errorf("%s: spin-orbit strength not finite: %w", m.Symbol, ErrInvalidMaterial)
	}

	return nil
}

// clone returns a copy that shares no slices with m.
func (m Material) clone() Material {
	out := m
	out.FormFactors = append([]FormFactor(nil), m.FormFactors...)

	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
