// Package kpath turns a sequence of high-symmetry point labels into a
// concrete list of k-points for band-structure plots.
//
// Coordinates are in units of 2π/a for the FCC Brillouin zone:
//
//	Γ (G) (0, 0, 0)       X (0, 1, 0)
//	L     (½, ½, ½)       W (½, 1, 0)
//	K     (¾, ¾, 0)       U (¼, 1, ¼)
//
// A path "LGXUG" with 80 points per segment yields 4×80 points: every
// segment includes both of its end points, so interior symmetry points
// appear twice (once closing a segment, once opening the next).
package kpath
