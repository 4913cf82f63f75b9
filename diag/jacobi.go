package diag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/epmbands/matrix"
)

// Jacobi diagonalizes with cyclic Jacobi rotations.
type Jacobi struct {
	ws     workspace
	tol    float64
	sweeps int
}

var _ Solver = (*Jacobi)(nil)

// NewJacobi returns a Jacobi solver; non-positive arguments select
// matrix.DefaultJacobiTol and matrix.DefaultJacobiSweeps.
func NewJacobi(tol float64, maxSweeps int) *Jacobi {
	return &Jacobi{tol: tol, sweeps: maxSweeps}
}

// Eigenvalues implements Solver.
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrInvalidBandCount, ErrNotConverged.
func (s *Jacobi) Eigenvalues(h *matrix.Hermitian, bands int) ([]float64, error) {
	d, stride, err := s.ws.realForm(h, bands)
	if err != nil {
		return nil, err
	}
	values, err := matrix.Jacobi(d, s.tol, s.sweeps)
	if err != nil {
		if errors.Is(err, matrix.ErrEigenFailed) {
			return nil, fmt.Errorf("%w: %w", ErrNotConverged, err)
		}
		return nil, err
	}

	return pick(values, stride, bands)
}
