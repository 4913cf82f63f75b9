// Package bandstructure drives basis generation, Hamiltonian assembly and
// diagonalization over a list of k-points, then references the energies to
// the valence-band maximum and reports the gap.
//
// Compute runs sequentially with one worker and otherwise splits the
// k-points into contiguous chunks, one goroutine per chunk. Each worker owns
// its Hamiltonian buffer and Solver and writes only the result rows of its
// chunk, so the table is in input order once all workers return and no lock
// guards it. The first failing k-point cancels the other workers and its
// error is returned.
//
// Energies are stored in eV. Adjust shifts them so that the chosen reference
// (the valence-band maximum unless MidGap is requested) sits at zero.
package bandstructure
