package kpath

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// symmetryPoints holds the FCC high-symmetry points in units of 2π/a.
var symmetryPoints = map[string]r3.Vec{
	"G": {X: 0, Y: 0, Z: 0},
	"X": {X: 0, Y: 1, Z: 0},
	"L": {X: 0.5, Y: 0.5, Z: 0.5},
	"W": {X: 0.5, Y: 1, Z: 0},
	"K": {X: 0.75, Y: 0.75, Z: 0},
	"U": {X: 0.25, Y: 1, Z: 0.25},
}

// Point returns the coordinates of a symmetry-point label.
// "Γ" is accepted as an alias of "G".
func Point(label string) (r3.Vec, error) {
	if label == "Γ" {
		label = "G"
	}
	p, ok := symmetryPoints[strings.ToUpper(label)]
	if !ok {
		return r3.Vec{}, fmt.Errorf("%q: %w", label, ErrUnknownPoint)
	}

	return p, nil
}

// Labels returns the known symmetry-point labels.
func Labels() []string { return []string{"G", "K", "L", "U", "W", "X"} }

// DefaultPaths returns the paths computed for every material in a full run.
func DefaultPaths() []string { return []string{"LGXUKG", "WGXWLG"} }

// ParseLabels splits a compact path such as "LGXUG" or "LΓX" into labels,
// one rune per label, validating each against the table.
func ParseLabels(path string) ([]string, error) {
	labels := make([]string, 0, len(path))
	for _, r := range strings.TrimSpace(path) {
		l := string(r)
		if l == "Γ" {
			l = "G"
		}
		l = strings.ToUpper(l)
		if _, err := Point(l); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	if len(labels) < 2 {
		return nil, fmt.Errorf("%q: %w", path, ErrPathTooShort)
	}

	return labels, nil
}

// Path is an ordered list of k-points with the segment bookkeeping needed to
// label a band plot.
type Path struct {
	Points        []r3.Vec // 2π/a units
	Labels        []string // symmetry labels, one per segment boundary
	SegmentStarts []int    // index of the first point of each segment, then len(Points)
}

// Sample linearly interpolates pointsPerSegment points between every pair of
// consecutive labels, end points included (t = j/(n−1)).
// Implementation:
//   - Stage 1: resolve every label (ErrUnknownPoint) and validate counts.
//   - Stage 2: for segment s, write points s·n … s·n+n−1.
//
// Errors: ErrPathTooShort, ErrTooFewPoints, ErrUnknownPoint.
// Complexity: O(S·n).
func Sample(labels []string, pointsPerSegment int) (Path, error) {
	if len(labels) < 2 {
		return Path{}, fmt.Errorf("%v: %w", labels, ErrPathTooShort)
	}
	if pointsPerSegment < 2 {
		return Path{}, fmt.Errorf("%d: %w", pointsPerSegment, ErrTooFewPoints)
	}
	corners := make([]r3.Vec, len(labels))
	for i, l := range labels {
		p, err := Point(l)
		if err != nil {
			return Path{}, err
		}
		corners[i] = p
	}

	var (
		segments = len(labels) - 1
		n        = pointsPerSegment
		path     = Path{
			Points:        make([]r3.Vec, 0, segments*n),
			Labels:        append([]string(nil), labels...),
			SegmentStarts: make([]int, 0, segments+1),
		}
		s, j int
	)
	for s = 0; s < segments; s++ {
		path.SegmentStarts = append(path.SegmentStarts, len(path.Points))
		from, step := corners[s], r3.Sub(corners[s+1], corners[s])
		for j = 0; j < n; j++ {
			t := float64(j) / float64(n-1)
			path.Points = append(path.Points, r3.Add(from, r3.Scale(t, step)))
		}
	}
	path.SegmentStarts = append(path.SegmentStarts, len(path.Points))

	return path, nil
}

// SampleString is ParseLabels followed by Sample.
func SampleString(path string, pointsPerSegment int) (Path, error) {
	labels, err := ParseLabels(path)
	if err != nil {
		return Path{}, err
	}

	return Sample(labels, pointsPerSegment)
}

// Len returns the number of k-points.
func (p Path) Len() int { return len(p.Points) }

// String returns the compact label form, e.g. "LGXUG".
func (p Path) String() string { return strings.Join(p.Labels, "") }

// Distances returns the cumulative |Δk| along the path, the abscissa of a
// band plot. Consecutive duplicates at segment joints add zero length.
func (p Path) Distances() []float64 {
	out := make([]float64, len(p.Points))
	for i := 1; i < len(p.Points); i++ {
		out[i] = out[i-1] + r3.Norm(r3.Sub(p.Points[i], p.Points[i-1]))
	}

	return out
}
