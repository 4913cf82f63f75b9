// Package diag computes the lowest eigenvalues of Hamiltonians.
//
// Two solvers implement the Solver interface:
//
//	LAPACK  gonum's mat.EigenSym (a port of LAPACK dsyev)
//	Jacobi  cyclic Jacobi rotations from the matrix package
//
// Both work on real symmetric input. A real Hamiltonian is passed as is; a
// complex one is replaced by its 2n×2n real embedding, whose spectrum is the
// Hermitian spectrum with every value repeated, and every second value is
// kept.
//
// A Solver owns scratch buffers sized for the last input and must not be
// shared between goroutines. Use a Factory to give each worker its own.
package diag
