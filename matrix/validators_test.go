// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epmbands/matrix"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		m       *matrix.Dense
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"square 3x3", dense(3, 3), nil},
		{"wide 2x3", dense(2, 3), matrix.ErrNonSquare},
		{"tall 3x1", dense(3, 1), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSymmetric covers tolerance handling and non-finite entries.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2 + 1e-10, 3})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-12), matrix.ErrAsymmetry)

	require.NoError(t, m.Set(0, 1, math.NaN()))
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1), matrix.ErrNaNInf)

	wide, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(wide, 1), matrix.ErrNonSquare)
}
