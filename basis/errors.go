package basis

import "errors"

var (
	// ErrInvalidShellCount indicates a non-positive nearest-neighbour shell count.
	ErrInvalidShellCount = errors.New("basis: shell count must be > 0")

	// ErrUnknownLattice indicates a Lattice value outside the supported set.
	ErrUnknownLattice = errors.New("basis: unknown lattice")

	// ErrEmptyBasis indicates a truncation policy removed every shell.
	ErrEmptyBasis = errors.New("basis: truncation left no vectors")
)
