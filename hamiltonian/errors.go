package hamiltonian

import "errors"

var (
	// ErrEmptyBasis indicates a basis set with no vectors.
	ErrEmptyBasis = errors.New("hamiltonian: empty basis")

	// ErrLatticeMismatch indicates a basis generated for another lattice than the material's.
	ErrLatticeMismatch = errors.New("hamiltonian: basis lattice differs from material lattice")

	// ErrDimensionMismatch indicates a caller buffer of the wrong size.
	ErrDimensionMismatch = errors.New("hamiltonian: buffer dimension mismatch")
)
