package bandstructure

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNilBuilder indicates Compute was called without a Hamiltonian builder.
	ErrNilBuilder = errors.New("bandstructure: nil builder")

	// ErrNoKPoints indicates an empty k-point list.
	ErrNoKPoints = errors.New("bandstructure: no k-points")

	// ErrValenceBands indicates a valence-band count that leaves no valence or no conduction band.
	ErrValenceBands = errors.New("bandstructure: valence band count out of range")

	// ErrEmptyResult indicates a result without energies.
	ErrEmptyResult = errors.New("bandstructure: empty result")

	// ErrUnknownReference indicates an energy reference name ParseReference does not know.
	ErrUnknownReference = errors.New("bandstructure: unknown energy reference")
)

// KPointError reports the k-point at which a computation failed.
type KPointError struct {
	Index int
	K     r3.Vec
	Err   error
}

func (e *KPointError) Error() string {
	return fmt.Sprintf("bandstructure: k-point %d (%.4g, %.4g, %.4g): %v", e.Index, e.K.X, e.K.Y, e.K.Z, e.Err)
}

func (e *KPointError) Unwrap() error { return e.Err }
