// SPDX-License-Identifier: MIT

// Package matrix holds the dense storage used by the band-structure engine.
//
// The package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Hermitian: a square complex128 matrix whose off-diagonal entries are
//     always written in conjugate pairs, so H = H† holds by construction.
//   - RealEmbedding / RealPart: maps from a Hermitian n×n matrix to a real
//     symmetric matrix with the same spectrum (2n×2n with every eigenvalue
//     doubled, or n×n when the imaginary part vanishes).
//   - Jacobi: cyclic Jacobi eigenvalue kernel for symmetric Dense input.
//
// Matrices here are small (tens to a few hundred rows) and rebuilt per
// k-point, so storage is a single flat slice and no views or sparse layouts
// are offered.
package matrix
