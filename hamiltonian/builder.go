package hamiltonian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/basis"
	"github.com/katalvlaran/epmbands/material"
	"github.com/katalvlaran/epmbands/matrix"
)

// Builder assembles Hamiltonians for one (material, basis) pair.
// It is read-only after NewBuilder and safe for concurrent Build calls as
// long as every goroutine passes its own buffer to BuildInto.
type Builder struct {
	mat   material.Material
	set   basis.Set
	g     []r3.Vec // basis vectors as float triples, 2π/a units
	n     int      // plane waves
	dim   int      // n, or 2n with spin-orbit
	unit2 float64  // (2π/a)² in 1/Bohr²
	spin  bool
	pot   []complex128 // n×n potential V(Gi−Gj), Ry
	soFac []complex128 // n×n spin-orbit structure factor f(Gi−Gj), Ry; nil without spin-orbit
	real  bool         // spin-free and centrosymmetric: H is real symmetric
}

// NewBuilder precomputes the k-independent part of the Hamiltonian.
// Implementation:
//   - Stage 1: validate material, basis size and lattice agreement.
//   - Stage 2: for every pair i<j evaluate V(Gi−Gj) (and f(Gi−Gj) with
//     spin-orbit) from the material's form factors; mirror with conj.
//
// Errors: material.ErrInvalidMaterial, ErrEmptyBasis, ErrLatticeMismatch.
// Complexity: O(n²) time and memory.
func NewBuilder(m material.Material, set basis.Set, opts ...Option) (*Builder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, ErrEmptyBasis
	}
	if set.Lattice() != m.Lattice {
		return nil, fmt.Errorf("%s basis for %s (%s): %w", set.Lattice(), m.Symbol, m.Lattice, ErrLatticeMismatch)
	}

	n := set.Len()
	b := &Builder{
		mat:   m,
		set:   set,
		g:     make([]r3.Vec, n),
		n:     n,
		dim:   n,
		spin:  o.SpinOrbit,
		pot:   make([]complex128, n*n),
		unit2: m.ReciprocalUnit() * m.ReciprocalUnit(),
	}
	if b.spin {
		b.dim = 2 * n
		b.soFac = make([]complex128, n*n)
	}
	for i := 0; i < n; i++ {
		v := set.At(i)
		b.g[i] = r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
	}

	var (
		i, j       int
		dg         basis.Vector
		phase      float64
		vs, va     float64
		cos, sin   float64
		z, f       complex128
		lamS, lamA = m.SpinOrbit.Symmetric, m.SpinOrbit.Antisymmetric
		tau        = m.Offset
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dg = set.At(i).Sub(set.At(j))
			phase = 2 * math.Pi * (float64(dg.X)*tau.X + float64(dg.Y)*tau.Y + float64(dg.Z)*tau.Z)
			sin, cos = math.Sincos(phase)

			vs, va = m.FormFactor(dg.Norm2())
			z = complex(vs*cos, va*sin)
			b.pot[i*n+j] = z
			b.pot[j*n+i] = complex(real(z), -imag(z))

			if b.spin {
				f = complex(lamA*sin, -lamS*cos)
				b.soFac[i*n+j] = f
				// f(−ΔG) = −conj(f(ΔG))
				b.soFac[j*n+i] = complex(-real(f), imag(f))
			}
		}
	}
	b.real = !b.spin && m.Centrosymmetric()

	return b, nil
}

// Dim returns the Hamiltonian dimension: basis size, doubled with spin-orbit.
func (b *Builder) Dim() int { return b.dim }

// BasisSize returns the number of plane waves.
func (b *Builder) BasisSize() int { return b.n }

// SpinOrbit reports whether spin-orbit coupling is included.
func (b *Builder) SpinOrbit() bool { return b.spin }

// Material returns the material the builder was made for.
func (b *Builder) Material() material.Material { return b.mat }

// Basis returns the plane-wave basis.
func (b *Builder) Basis() basis.Set { return b.set }

// Real reports whether every Hamiltonian from this builder is real symmetric.
func (b *Builder) Real() bool { return b.real }

// NewBuffer allocates a Hamiltonian of the builder's dimension.
func (b *Builder) NewBuffer() *matrix.Hermitian {
	h, err := matrix.NewHermitian(b.dim)
	if err != nil {
		panic(err) // dim > 0 is guaranteed by NewBuilder
	}

	return h
}

// Build returns a new Hamiltonian at k (units of 2π/a).
func (b *Builder) Build(k r3.Vec) *matrix.Hermitian {
	h := b.NewBuffer()
	b.fill(k, h)

	return h
}

// BuildInto overwrites h with the Hamiltonian at k, reusing its storage.
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(dim²).
func (b *Builder) BuildInto(k r3.Vec, h *matrix.Hermitian) error {
	if h == nil {
		return fmt.Errorf("hamiltonian: BuildInto: %w", matrix.ErrNilMatrix)
	}
	if h.Dim() != b.dim {
		return fmt.Errorf("buffer %d, want %d: %w", h.Dim(), b.dim, ErrDimensionMismatch)
	}
	b.fill(k, h)

	return nil
}

// fill writes every entry of h; h has dimension b.dim.
func (b *Builder) fill(k r3.Vec, h *matrix.Hermitian) {
	h.Reset()
	var (
		n          = b.n
		i, j, s    int
		kin        float64
		ki, kj, c  r3.Vec
		pauli      [2][2]complex128
		f          complex128
		s1, s2, sp int
	)
	spins := 1
	if b.spin {
		spins = 2
	}

	for i = 0; i < n; i++ {
		kin = b.unit2 * r3.Norm2(r3.Add(k, b.g[i]))
		for s = 0; s < spins; s++ {
			mustSet(h.SetDiag(s*n+i, kin))
		}
		for j = i + 1; j < n; j++ {
			for s = 0; s < spins; s++ {
				mustSet(h.SetPair(s*n+i, s*n+j, b.pot[i*n+j]))
			}
		}
	}
	if !b.spin {
		return
	}

	for i = 0; i < n; i++ {
		ki = r3.Add(k, b.g[i])
		for j = i + 1; j < n; j++ {
			f = b.soFac[i*n+j]
			if f == 0 {
				continue
			}
			kj = r3.Add(k, b.g[j])
			c = r3.Scale(b.unit2, r3.Cross(ki, kj))
			pauli = sigmaDot(c)
			for s1 = 0; s1 < 2; s1++ {
				for s2 = 0; s2 < 2; s2++ {
					sp = s2*n + j
					mustSet(h.AddPair(s1*n+i, sp, f*pauli[s1][s2]))
				}
			}
		}
	}
}

// sigmaDot returns v·σ = [[vz, vx − i vy], [vx + i vy, −vz]].
func sigmaDot(v r3.Vec) [2][2]complex128 {
	return [2][2]complex128{
		{complex(v.Z, 0), complex(v.X, -v.Y)},
		{complex(v.X, v.Y), complex(-v.Z, 0)},
	}
}

// mustSet panics on an index error, which fill rules out by construction.
func mustSet(err error) {
	if err != nil {
		panic(err)
	}
}
