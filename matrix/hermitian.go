// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Hermitian is a square complex matrix kept equal to its conjugate transpose.
//
// The only mutators are SetDiag, SetPair and AddPair: every off-diagonal write
// stores z at (i,j) and conj(z) at (j,i) in the same call, and diagonal writes
// take a real value. H = H† therefore holds exactly, without a post-check.
//
// Storage is full (not packed) row-major, which keeps RealEmbedding a single
// pass and lets callers read rows directly.
type Hermitian struct {
	n    int          // dimension
	data []complex128 // n*n row-major entries
}

// NewHermitian allocates an n×n zero Hermitian matrix.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) memory.
func NewHermitian(n int) (*Hermitian, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Hermitian{n: n, data: make([]complex128, n*n)}, nil
}

// Dim returns the matrix dimension n.
func (h *Hermitian) Dim() int { return h.n }

// Reset zeroes every entry while keeping the allocation.
func (h *Hermitian) Reset() {
	for i := range h.data {
		h.data[i] = 0
	}
}

// At returns the entry (i, j) or ErrOutOfRange.
func (h *Hermitian) At(i, j int) (complex128, error) {
	if err := h.check(i, j); err != nil {
		return 0, err
	}

	return h.data[i*h.n+j], nil
}

// SetDiag stores the real value v at (i, i).
func (h *Hermitian) SetDiag(i int, v float64) error {
	if err := h.check(i, i); err != nil {
		return err
	}
	h.data[i*h.n+i] = complex(v, 0)

	return nil
}

// SetPair stores z at (i, j) and conj(z) at (j, i).
// When i == j the imaginary part of z must be zero (ErrComplexDiagonal).
func (h *Hermitian) SetPair(i, j int, z complex128) error {
	if err := h.check(i, j); err != nil {
		return err
	}
	if i == j {
		if imag(z) != 0 {
			return matrixErrorf(opHermitian, ErrComplexDiagonal)
		}
		h.data[i*h.n+i] = z

		return nil
	}
	h.data[i*h.n+j] = z
	h.data[j*h.n+i] = cmplx.Conj(z)

	return nil
}

// AddPair adds z to (i, j) and conj(z) to (j, i); on the diagonal only the
// real part of z is added. Used to superpose spin-orbit blocks on a potential.
func (h *Hermitian) AddPair(i, j int, z complex128) error {
	if err := h.check(i, j); err != nil {
		return err
	}
	if i == j {
		h.data[i*h.n+i] += complex(real(z), 0)

		return nil
	}
	h.data[i*h.n+j] += z
	h.data[j*h.n+i] += cmplx.Conj(z)

	return nil
}

// IsReal reports whether every entry has a zero imaginary part, in which
// case the matrix is real symmetric.
// Complexity: O(n²).
func (h *Hermitian) IsReal() bool {
	for _, z := range h.data {
		if imag(z) != 0 {
			return false
		}
	}

	return true
}

// ConjugateTranspose returns a new matrix holding H†.
// The result is stored without going through SetPair so callers can compare
// it against h entry by entry.
func (h *Hermitian) ConjugateTranspose() *Hermitian {
	out := &Hermitian{n: h.n, data: make([]complex128, len(h.data))}
	var i, j int
	for i = 0; i < h.n; i++ {
		for j = 0; j < h.n; j++ {
			out.data[j*h.n+i] = cmplx.Conj(h.data[i*h.n+j])
		}
	}

	return out
}

// Equal reports exact, entry-wise equality.
func (h *Hermitian) Equal(o *Hermitian) bool {
	if h == nil || o == nil || h.n != o.n {
		return false
	}
	for i := range h.data {
		if h.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

func (h *Hermitian) check(i, j int) error {
	if i < 0 || i >= h.n || j < 0 || j >= h.n {
		return fmt.Errorf("Hermitian(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return nil
}
