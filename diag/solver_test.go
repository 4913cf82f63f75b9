package diag_test

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/basis"
	"github.com/katalvlaran/epmbands/diag"
	"github.com/katalvlaran/epmbands/hamiltonian"
	"github.com/katalvlaran/epmbands/material"
	"github.com/katalvlaran/epmbands/matrix"
)

func solvers() map[string]diag.Solver {
	return map[string]diag.Solver{
		"lapack": diag.NewLAPACK(),
		"jacobi": diag.NewJacobi(0, 0),
	}
}

// pauliY returns [[1, −2i], [2i, 1]] with eigenvalues −1 and 3.
func pauliY(t *testing.T) *matrix.Hermitian {
	t.Helper()
	h, err := matrix.NewHermitian(2)
	require.NoError(t, err)
	require.NoError(t, h.SetDiag(0, 1))
	require.NoError(t, h.SetDiag(1, 1))
	require.NoError(t, h.SetPair(0, 1, complex(0, -2)))

	return h
}

func TestComplexTwoByTwo(t *testing.T) {
	for name, s := range solvers() {
		got, err := s.Eigenvalues(pauliY(t), 2)
		require.NoError(t, err, name)
		if diff := cmp.Diff([]float64{-1, 3}, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Fatalf("%s: (-want +got):\n%s", name, diff)
		}
	}
}

func TestRealDiagonal(t *testing.T) {
	h, err := matrix.NewHermitian(4)
	require.NoError(t, err)
	for i, v := range []float64{3, -1, 7, 0.5} {
		require.NoError(t, h.SetDiag(i, v))
	}
	for name, s := range solvers() {
		got, err := s.Eigenvalues(h, 3)
		require.NoError(t, err, name)
		require.Equal(t, []float64{-1, 0.5, 3}, got, name)
	}
}

func TestSolversAgreeOnHamiltonians(t *testing.T) {
	set, err := basis.Generate(4, basis.FCC)
	require.NoError(t, err)
	reg := material.Builtin()
	k := r3.Vec{X: 0.2, Y: 0.1, Z: 0.4}

	for _, tc := range []struct {
		symbol string
		spin   bool
	}{{"Si", false}, {"GaAs", false}, {"GaAs", true}} {
		m, err := reg.Lookup(tc.symbol)
		require.NoError(t, err)
		b, err := hamiltonian.NewBuilder(m, set, hamiltonian.WithSpinOrbit(tc.spin))
		require.NoError(t, err)
		h := b.Build(k)

		const bands = 10
		lp, err := diag.NewLAPACK().Eigenvalues(h, bands)
		require.NoError(t, err)
		jc, err := diag.NewJacobi(0, 0).Eigenvalues(h, bands)
		require.NoError(t, err)

		require.Len(t, lp, bands)
		require.True(t, sort.Float64sAreSorted(lp), "%s: ascending", tc.symbol)
		if diff := cmp.Diff(lp, jc, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Fatalf("%s spin=%v: lapack vs jacobi (-lapack +jacobi):\n%s", tc.symbol, tc.spin, diff)
		}
	}
}

func TestSpinOrbitKramersPairs(t *testing.T) {
	set, err := basis.Generate(4, basis.FCC)
	require.NoError(t, err)
	si, err := material.Builtin().Lookup("Si")
	require.NoError(t, err)
	b, err := hamiltonian.NewBuilder(si, set, hamiltonian.WithSpinOrbit(true))
	require.NoError(t, err)

	// Inversion plus time reversal: every level is doubly degenerate.
	got, err := diag.NewLAPACK().Eigenvalues(b.Build(r3.Vec{X: 0.3, Y: 0.1}), 8)
	require.NoError(t, err)
	for i := 0; i < len(got); i += 2 {
		require.InDelta(t, got[i], got[i+1], 1e-9, "pair %d", i/2)
	}
}

func TestDeterministic(t *testing.T) {
	set, err := basis.Generate(5, basis.FCC)
	require.NoError(t, err)
	m, err := material.Builtin().Lookup("InP")
	require.NoError(t, err)
	b, err := hamiltonian.NewBuilder(m, set)
	require.NoError(t, err)
	k := r3.Vec{X: 0.25, Y: 1, Z: 0.25}

	s := diag.NewLAPACK()
	a, err := s.Eigenvalues(b.Build(k), 8)
	require.NoError(t, err)
	c, err := diag.NewLAPACK().Eigenvalues(b.Build(k), 8)
	require.NoError(t, err)
	require.Equal(t, a, c)
}

func TestErrors(t *testing.T) {
	for name, s := range solvers() {
		_, err := s.Eigenvalues(pauliY(t), 0)
		require.ErrorIs(t, err, diag.ErrInvalidBandCount, name)
		_, err = s.Eigenvalues(pauliY(t), 3)
		require.ErrorIs(t, err, diag.ErrInvalidBandCount, name)
		_, err = s.Eigenvalues(nil, 1)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)

		h := pauliY(t)
		require.NoError(t, h.SetDiag(0, math.NaN()))
		_, err = s.Eigenvalues(h, 1)
		require.ErrorIs(t, err, matrix.ErrNaNInf, name)
	}
}

func TestJacobiNonConvergencePropagates(t *testing.T) {
	n := 10
	h, err := matrix.NewHermitian(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			require.NoError(t, h.SetPair(i, j, complex(1/float64(i+j+1), 0)))
		}
	}
	_, err = diag.NewJacobi(1e-15, 1).Eigenvalues(h, 2)
	require.ErrorIs(t, err, diag.ErrNotConverged)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "lapack", "JACOBI"} {
		f, err := diag.ByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, f())
	}
	_, err := diag.ByName("arpack")
	require.ErrorIs(t, err, diag.ErrUnknownSolver)
}
