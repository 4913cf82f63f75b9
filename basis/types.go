package basis

import (
	"fmt"
	"strings"
)

// Lattice selects the Bravais lattice of the crystal (direct space).
type Lattice int

const (
	// FCC is the face-centred cubic lattice of diamond and zincblende crystals.
	FCC Lattice = iota
	// BCC is the body-centred cubic lattice.
	BCC
	// SimpleCubic is the primitive cubic lattice.
	SimpleCubic
)

// String returns the conventional lattice name.
func (l Lattice) String() string {
	switch l {
	case FCC:
		return "fcc"
	case BCC:
		return "bcc"
	case SimpleCubic:
		return "sc"
	default:
		return fmt.Sprintf("Lattice(%d)", int(l))
	}
}

// ParseLattice maps "fcc", "bcc" or "sc" (case-insensitive) to a Lattice.
func ParseLattice(s string) (Lattice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcc", "":
		return FCC, nil
	case "bcc":
		return BCC, nil
	case "sc", "cubic", "simple-cubic":
		return SimpleCubic, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownLattice)
	}
}

// contains reports whether the integer triple belongs to the reciprocal
// lattice of l.
func (l Lattice) contains(v Vector) bool {
	switch l {
	case FCC:
		ox, oy, oz := odd(v.X), odd(v.Y), odd(v.Z)
		return (ox && oy && oz) || (!ox && !oy && !oz)
	case BCC:
		return !odd(v.X + v.Y + v.Z)
	default:
		return true
	}
}

// Valid reports whether l is one of the supported lattices.
func (l Lattice) Valid() bool { return l >= FCC && l <= SimpleCubic }

func odd(n int) bool { return n%2 != 0 }

// Vector is a reciprocal-lattice vector in units of 2π/a.
type Vector struct {
	X, Y, Z int
}

// Norm2 returns |G|².
func (v Vector) Norm2() int { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Sub returns v − w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Neg returns −v.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y, -v.Z} }

// String formats the triple as "(x,y,z)".
func (v Vector) String() string { return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z) }

// less orders by |G|², then lexicographically, giving a total order.
func (v Vector) less(w Vector) bool {
	if a, b := v.Norm2(), w.Norm2(); a != b {
		return a < b
	}
	if v.X != w.X {
		return v.X < w.X
	}
	if v.Y != w.Y {
		return v.Y < w.Y
	}

	return v.Z < w.Z
}

// Set is an ordered, immutable sequence of basis vectors.
type Set struct {
	lattice Lattice
	vectors []Vector
	shells  []int // distinct |G|² values in ascending order
}

// Len returns the number of plane waves.
func (s Set) Len() int { return len(s.vectors) }

// At returns the i-th vector.
func (s Set) At(i int) Vector { return s.vectors[i] }

// Vectors returns a copy of the ordered vectors.
func (s Set) Vectors() []Vector {
	out := make([]Vector, len(s.vectors))
	copy(out, s.vectors)

	return out
}

// Shells returns the distinct |G|² values, ascending.
func (s Set) Shells() []int {
	out := make([]int, len(s.shells))
	copy(out, s.shells)

	return out
}

// Lattice returns the lattice the set was generated for.
func (s Set) Lattice() Lattice { return s.lattice }

// Index returns the position of v in the set, or -1.
// Complexity: O(n).
func (s Set) Index(v Vector) int {
	for i, w := range s.vectors {
		if w == v {
			return i
		}
	}

	return -1
}

// Dot returns v·w.
func (v Vector) Dot(w Vector) int { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }
