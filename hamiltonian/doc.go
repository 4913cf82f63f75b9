// Package hamiltonian assembles the empirical pseudopotential Hamiltonian of
// a crystal in a plane-wave basis.
//
// For basis vectors Gi, Gj and wave vector k (all in units of 2π/a) the
// spin-free matrix elements in Rydberg are
//
//	H[i][i] = (2π/a)² |k+Gi|²
//	H[i][j] = Vs(|ΔG|²) cos(2π ΔG·τ) + i Va(|ΔG|²) sin(2π ΔG·τ),  ΔG = Gi − Gj
//
// The off-diagonal block does not depend on k, so a Builder computes it once
// per (material, basis) and every Build only rewrites the diagonal.
//
// With spin-orbit coupling the basis is doubled in spin-major order
// (index s·n + i, s ∈ {↑, ↓}) and every pair gains
//
//	(2π/a)² f(ΔG) (Ki × Kj)·σ,   f = −i λs cos(2π ΔG·τ) + λa sin(2π ΔG·τ),  K = k + G
//
// Every off-diagonal entry is written together with its conjugate mirror, so
// the result equals its conjugate transpose exactly.
package hamiltonian
