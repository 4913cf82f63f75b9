package diag

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/epmbands/matrix"
)

// Solver returns the `bands` lowest eigenvalues of h in ascending order,
// in the units of h.
type Solver interface {
	Eigenvalues(h *matrix.Hermitian, bands int) ([]float64, error)
}

// Factory builds a fresh Solver; orchestrators call it once per worker.
type Factory func() Solver

// Solver names accepted by ByName.
const (
	NameLAPACK = "lapack"
	NameJacobi = "jacobi"
)

// ByName returns the factory for "lapack" (default when empty) or "jacobi".
func ByName(name string) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameLAPACK:
		return func() Solver { return NewLAPACK() }, nil
	case NameJacobi:
		return func() Solver { return NewJacobi(matrix.DefaultJacobiTol, matrix.DefaultJacobiSweeps) }, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSolver)
	}
}

// workspace holds the real symmetric form of the last Hamiltonian.
type workspace struct {
	dense *matrix.Dense
}

// realForm validates h and bands, then writes either Re(H) (real input) or
// the real embedding into the workspace. stride is 1 for the former and 2
// for the latter: the number of repeated eigenvalues per Hermitian one.
func (w *workspace) realForm(h *matrix.Hermitian, bands int) (*matrix.Dense, int, error) {
	if h == nil {
		return nil, 0, matrix.ErrNilMatrix
	}
	if bands <= 0 || bands > h.Dim() {
		return nil, 0, fmt.Errorf("bands=%d, dim=%d: %w", bands, h.Dim(), ErrInvalidBandCount)
	}
	if err := matrix.ValidateFinite(h); err != nil {
		return nil, 0, err
	}

	var (
		size   = h.Dim()
		stride = 1
		fill   = matrix.RealPart
	)
	if !h.IsReal() {
		size, stride, fill = 2*h.Dim(), 2, matrix.RealEmbedding
	}
	if w.dense == nil || w.dense.Rows() != size {
		d, err := matrix.NewDense(size, size)
		if err != nil {
			return nil, 0, err
		}
		w.dense = d
	}
	if _, err := fill(h, w.dense); err != nil {
		return nil, 0, err
	}

	return w.dense, stride, nil
}

// pick keeps every stride-th value of the ascending spectrum, up to bands.
func pick(values []float64, stride, bands int) ([]float64, error) {
	out := make([]float64, bands)
	for i := range out {
		v := values[i*stride]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("eigenvalue %d is %v: %w", i, v, ErrNotConverged)
		}
		out[i] = v
	}

	return out, nil
}
