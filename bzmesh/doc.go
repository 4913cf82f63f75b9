// Package bzmesh holds a tetrahedral Brillouin-zone mesh with named
// per-node scalar fields and integrates band fields into a density of
// states with the linear tetrahedron method.
//
// Band energies live in fields named "band_0", "band_1", … (see
// BandFieldName). ComputeDOS integrates one of them:
//
//  1. the energy window is the field's [min, max], split into equal bins;
//  2. for every tetrahedron the number of states below each bin edge,
//     N_T(E), is the closed-form volume of the region where the linearly
//     interpolated energy is below E, selected by how many corners lie
//     below E (0 to 4);
//  3. the density of a bin is ΔN over the bin width.
//
// The quadrature is exact for a field that is linear inside every
// tetrahedron, so the histogram integrates to the mesh volume.
//
// Tetrahedra are split into contiguous chunks, one goroutine per chunk, each
// filling a private histogram. Chunks are merged in order after all workers
// return, so results do not depend on scheduling.
package bzmesh
