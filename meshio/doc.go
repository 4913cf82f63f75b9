// Package meshio reads and writes tetrahedral Brillouin-zone meshes in the
// Gmsh MSH 2.2 ASCII format and translates them to and from bzmesh.Mesh.
//
// Only the parts the band and DOS pipelines need are mapped:
//
//	$Nodes      node coordinates (ids may be sparse)
//	$Elements   4-node tetrahedra (type 4); other element types are skipped
//	$NodeData   single-component scalar fields, keyed by their string tag
//
// Other sections are skipped. Malformed input yields an error wrapping
// ErrFormat that names the offending line.
package meshio
