package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epmbands/matrix"
)

// TestHermitianSetPairConjugates checks that one SetPair call writes both triangles.
func TestHermitianSetPairConjugates(t *testing.T) {
	h, err := matrix.NewHermitian(3)
	require.NoError(t, err)

	require.NoError(t, h.SetPair(0, 2, complex(1, -2)))
	upper, _ := h.At(0, 2)
	lower, _ := h.At(2, 0)
	require.Equal(t, complex(1, -2), upper)
	require.Equal(t, complex(1, 2), lower) // conjugate mirror

	require.True(t, h.Equal(h.ConjugateTranspose())) // H = H† exactly
}

// TestHermitianDiagonalMustBeReal rejects complex values on the diagonal.
func TestHermitianDiagonalMustBeReal(t *testing.T) {
	h, err := matrix.NewHermitian(2)
	require.NoError(t, err)

	require.ErrorIs(t, h.SetPair(1, 1, complex(0, 1)), matrix.ErrComplexDiagonal)
	require.NoError(t, h.SetPair(1, 1, 5))
	require.NoError(t, h.AddPair(1, 1, complex(1, 7))) // imaginary part is dropped
	v, _ := h.At(1, 1)
	require.Equal(t, complex(6, 0), v)
}

// TestHermitianIsReal distinguishes real symmetric content from complex content.
func TestHermitianIsReal(t *testing.T) {
	h, err := matrix.NewHermitian(2)
	require.NoError(t, err)
	require.NoError(t, h.SetPair(0, 1, 3))
	require.True(t, h.IsReal())

	require.NoError(t, h.AddPair(0, 1, complex(0, 1)))
	require.False(t, h.IsReal())

	h.Reset()
	require.True(t, h.IsReal())
}

// TestHermitianOutOfRange verifies bounds checks on every accessor.
func TestHermitianOutOfRange(t *testing.T) {
	h, err := matrix.NewHermitian(2)
	require.NoError(t, err)

	_, err = h.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, h.SetDiag(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, h.SetPair(0, 3, 1), matrix.ErrOutOfRange)

	_, err = matrix.NewHermitian(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRealEmbeddingBlocks checks the [[Re, -Im], [Im, Re]] layout.
func TestRealEmbeddingBlocks(t *testing.T) {
	h, err := matrix.NewHermitian(2)
	require.NoError(t, err)
	require.NoError(t, h.SetDiag(0, 1))
	require.NoError(t, h.SetDiag(1, 2))
	require.NoError(t, h.SetPair(0, 1, complex(0.5, 0.25)))

	m, err := matrix.RealEmbedding(h, nil)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	want := [][]float64{
		{1, 0.5, 0, -0.25},
		{0.5, 2, 0.25, 0},
		{0, 0.25, 1, 0.5},
		{-0.25, 0, 0.5, 2},
	}
	for i := range want {
		for j := range want[i] {
			v, _ := m.At(i, j)
			require.Equal(t, want[i][j], v, "entry (%d,%d)", i, j)
		}
	}
	require.NoError(t, matrix.ValidateSymmetric(m, 0))

	bad, _ := matrix.NewDense(3, 3)
	_, err = matrix.RealEmbedding(h, bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestValidateFinite rejects NaN entries.
func TestValidateFinite(t *testing.T) {
	h, err := matrix.NewHermitian(2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(h))
	require.NoError(t, h.SetPair(0, 1, complex(math.NaN(), 0)))
	require.ErrorIs(t, matrix.ValidateFinite(h), matrix.ErrNaNInf)
}
