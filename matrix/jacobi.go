// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Default Jacobi policy.
const (
	// DefaultJacobiTol is the off-diagonal Frobenius norm, relative to the
	// full norm, below which the iteration stops.
	DefaultJacobiTol = 1e-12

	// DefaultJacobiSweeps caps the number of cyclic sweeps. Cyclic Jacobi
	// converges quadratically, so a few dozen sweeps is generous for n ≤ 512.
	DefaultJacobiSweeps = 64
)

// Jacobi computes all eigenvalues of a symmetric Dense matrix by cyclic
// Jacobi rotations and returns them in ascending order.
// Implementation:
//   - Stage 1: validate square and symmetric input within tol.
//   - Stage 2: sweep every (p,q), p<q, in fixed row order; each rotation
//     annihilates A[p,q] using t = sgn(θ)/(|θ|+√(θ²+1)), θ = (A[q,q]−A[p,p])/(2A[p,q]).
//   - Stage 3: stop when off(A) ≤ tol·‖A‖F, read the diagonal and sort it.
//
// Behavior highlights:
//   - The input matrix is not modified; a working copy is rotated.
//   - Entries already below the threshold are skipped (c=1, s=0).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (Stage 1);
//     ErrEigenFailed when maxSweeps is exhausted (Stage 2).
//
// Determinism:
//   - Fixed sweep order; identical input gives bit-identical output.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func Jacobi(m *Dense, tol float64, maxSweeps int) ([]float64, error) {
	if err := ValidateSymmetric(m, symmetryTol(m, tol)); err != nil {
		return nil, matrixErrorf(opJacobi, err)
	}
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultJacobiSweeps
	}

	n := m.r
	a := m.Clone().data // working copy, row-major

	var (
		sweep                   int
		p, q, r                 int
		app, aqq, apq, arp, arq float64
		theta, t, c, s, tau     float64
		off, norm               float64
		converged               bool
	)
	norm = frobenius(a)
	if norm == 0 {
		return make([]float64, n), nil
	}

	for sweep = 0; sweep < maxSweeps; sweep++ {
		off = offDiagonalNorm(a, n)
		if off <= tol*norm {
			converged = true

			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = a[p*n+q]
				if math.Abs(apq) <= tol*norm/float64(n) {
					continue // already negligible
				}
				app = a[p*n+p]
				aqq = a[q*n+q]
				theta = (aqq - app) / (2 * apq)
				if math.Abs(theta) > 1e150 {
					t = 1 / (2 * theta) // θ² would overflow
				} else {
					t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
				}
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c
				tau = s / (1 + c)

				// diagonal update
				a[p*n+p] = app - t*apq
				a[q*n+q] = aqq + t*apq
				a[p*n+q] = 0
				a[q*n+p] = 0

				// rotate rows/columns r ≠ p,q, keeping symmetry
				for r = 0; r < n; r++ {
					if r == p || r == q {
						continue
					}
					arp = a[r*n+p]
					arq = a[r*n+q]
					a[r*n+p] = arp - s*(arq+tau*arp)
					a[p*n+r] = a[r*n+p]
					a[r*n+q] = arq + s*(arp-tau*arq)
					a[q*n+r] = a[r*n+q]
				}
			}
		}
	}
	if !converged && offDiagonalNorm(a, n) > tol*norm {
		return nil, matrixErrorf(opJacobi, fmt.Errorf("%d sweeps: %w", maxSweeps, ErrEigenFailed))
	}

	eigs := make([]float64, n)
	for p = 0; p < n; p++ {
		eigs[p] = a[p*n+p]
	}
	sort.Float64s(eigs)

	return eigs, nil
}

// symmetryTol scales the symmetry check with the matrix magnitude so that
// embeddings of large Hamiltonians are not rejected for rounding noise.
func symmetryTol(m *Dense, tol float64) float64 {
	if m == nil {
		return 0
	}
	if tol <= 0 {
		tol = DefaultJacobiTol
	}

	return tol * (1 + frobenius(m.data))
}

func frobenius(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}

	return math.Sqrt(sum)
}

func offDiagonalNorm(a []float64, n int) float64 {
	var (
		sum  float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				sum += a[i*n+j] * a[i*n+j]
			}
		}
	}

	return math.Sqrt(sum)
}
