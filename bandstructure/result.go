package bandstructure

import "gonum.org/v1/gonum/spatial/r3"

// Result is the band structure of one run: one ascending energy row per
// k-point, in input order.
type Result struct {
	Material string
	KPoints  []r3.Vec    // 2π/a units
	Energies [][]float64 // eV, [k-point][band]
	// Offset is the total energy subtracted by Adjust calls, in eV.
	Offset float64
}

// Len returns the number of k-points.
func (r *Result) Len() int { return len(r.Energies) }

// Bands returns the number of bands per k-point.
func (r *Result) Bands() int {
	if len(r.Energies) == 0 {
		return 0
	}

	return len(r.Energies[0])
}

// Band returns band i across all k-points.
func (r *Result) Band(i int) []float64 {
	out := make([]float64, len(r.Energies))
	for k, row := range r.Energies {
		out[k] = row[i]
	}

	return out
}

// Clone returns a deep copy.
func (r *Result) Clone() *Result {
	out := &Result{
		Material: r.Material,
		KPoints:  append([]r3.Vec(nil), r.KPoints...),
		Energies: make([][]float64, len(r.Energies)),
		Offset:   r.Offset,
	}
	for i, row := range r.Energies {
		out.Energies[i] = append([]float64(nil), row...)
	}

	return out
}
