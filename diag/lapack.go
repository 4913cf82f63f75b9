package diag

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/epmbands/matrix"
)

// LAPACK diagonalizes with gonum's symmetric eigensolver.
type LAPACK struct {
	ws     workspace
	sym    *mat.SymDense
	eig    mat.EigenSym
	values []float64
}

var _ Solver = (*LAPACK)(nil)

// NewLAPACK returns a solver with empty workspace.
func NewLAPACK() *LAPACK { return &LAPACK{} }

// Eigenvalues implements Solver.
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrInvalidBandCount, ErrNotConverged.
// Complexity: O(n³) for real input, O(8n³) for the complex embedding.
func (s *LAPACK) Eigenvalues(h *matrix.Hermitian, bands int) ([]float64, error) {
	d, stride, err := s.ws.realForm(h, bands)
	if err != nil {
		return nil, err
	}
	n := d.Rows()
	if s.sym == nil || s.sym.SymmetricDim() != n {
		// SymDense reads the upper triangle of the workspace slice in place.
		s.sym = mat.NewSymDense(n, d.RawData())
		s.values = make([]float64, n)
	}
	if ok := s.eig.Factorize(s.sym, false); !ok {
		return nil, ErrNotConverged
	}
	s.values = s.eig.Values(s.values)

	return pick(s.values, stride, bands)
}
