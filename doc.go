// Package epmbands computes electronic band structures of cubic
// semiconductors with the empirical pseudopotential method, and densities
// of states on tetrahedral Brillouin-zone meshes.
//
// What is in the box?
//
//	A pure-Go pipeline that goes from a material table to band files:
//		• Materials: tabulated form factors for 14 zinc-blende/diamond crystals, YAML overrides
//		• Basis: reciprocal-lattice vectors grouped in complete shells of equal |G|²
//		• Hamiltonian: kinetic + local pseudopotential (+ optional spin-orbit) per k-point
//		• Diagonalization: gonum's LAPACK port or a cyclic Jacobi kernel
//		• Paths: L, Γ, X, U, K, W sampled with inclusive segment ends
//		• DOS: linear tetrahedron integration with a parallel, deterministic merge
//
// Packages:
//
//	material/       Material, Registry, YAML tables, unit conversions
//	basis/          plane-wave basis generation by shells
//	matrix/         Dense and Hermitian storage, real embedding, Jacobi eigenvalues
//	hamiltonian/    Builder: H(k) assembly into reusable buffers
//	diag/           Solver interface, LAPACK and Jacobi solvers
//	kpath/          high-symmetry points and path sampling
//	bandstructure/  parallel Compute, Adjust (gap and energy zero), Run
//	bzmesh/         tetrahedral mesh, band fields, ComputeDOS
//	meshio/         Gmsh MSH 2.2 ASCII reader and writer
//	export/         band text files, CSV tables, SQLite run archive
//	telemetry/      Prometheus counters for k-points, tetrahedra and gaps
//	cmd/epm/        command line: bands, all, mesh-bands, dos, materials
//
// Energies are in eV; k-points and reciprocal vectors in units of 2π/a.
//
//	go install github.com/katalvlaran/epmbands/cmd/epm@latest
//	epm bands -m GaAs -p LGXUKG -N 60 -j 4
package epmbands
