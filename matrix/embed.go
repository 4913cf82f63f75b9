// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// RealEmbedding writes the real symmetric 2n×2n matrix
//
//	M = [ Re(H)  −Im(H) ]
//	    [ Im(H)   Re(H) ]
//
// into dst and returns it. Every eigenvalue λ of H appears exactly twice in
// the spectrum of M, so a real symmetric eigensolver recovers the spectrum of
// a Hermitian matrix.
// Implementation:
//   - Stage 1: allocate dst when nil; otherwise require dst to be 2n×2n.
//   - Stage 2: one pass over H filling the four blocks.
//
// Errors:
//   - ErrNilMatrix when h is nil; ErrDimensionMismatch for a wrongly sized dst.
//
// Complexity:
//   - Time O(n²), Space O(n²) when dst is allocated.
func RealEmbedding(h *Hermitian, dst *Dense) (*Dense, error) {
	if h == nil {
		return nil, matrixErrorf(opEmbed, ErrNilMatrix)
	}
	n := h.n
	m := 2 * n
	if dst == nil {
		var err error
		if dst, err = NewDense(m, m); err != nil {
			return nil, matrixErrorf(opEmbed, err)
		}
	} else if dst.r != m || dst.c != m {
		return nil, matrixErrorf(opEmbed, fmt.Errorf("dst %dx%d, want %dx%d: %w", dst.r, dst.c, m, m, ErrDimensionMismatch))
	}

	var (
		i, j   int
		re, im float64
		z      complex128
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			z = h.data[i*n+j]
			re, im = real(z), imag(z)
			dst.data[i*m+j] = re       // top-left
			dst.data[i*m+j+n] = -im    // top-right
			dst.data[(i+n)*m+j] = im   // bottom-left
			dst.data[(i+n)*m+j+n] = re // bottom-right
		}
	}

	return dst, nil
}

// RealPart writes Re(H) into an n×n dst (allocated when nil). It is only a
// faithful representation of H when h.IsReal() holds; callers check that.
// Complexity: O(n²).
func RealPart(h *Hermitian, dst *Dense) (*Dense, error) {
	if h == nil {
		return nil, matrixErrorf(opRealPart, ErrNilMatrix)
	}
	n := h.n
	if dst == nil {
		var err error
		if dst, err = NewDense(n, n); err != nil {
			return nil, matrixErrorf(opRealPart, err)
		}
	} else if dst.r != n || dst.c != n {
		return nil, matrixErrorf(opRealPart, fmt.Errorf("dst %dx%d, want %dx%d: %w", dst.r, dst.c, n, n, ErrDimensionMismatch))
	}
	for i, z := range h.data {
		dst.data[i] = real(z)
	}

	return dst, nil
}
