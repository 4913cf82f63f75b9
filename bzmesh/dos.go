package bzmesh

import (
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Histogram is the density of states of one field.
type Histogram struct {
	Band     int       // band index, −1 for a non-band field
	Field    string    // source field name
	Energies []float64 // bin centres
	Density  []float64 // states per unit energy in each bin
	Width    float64   // bin width
	// Cases counts, over every (tetrahedron, bin edge) evaluation, how many
	// corners were below the edge. A flat tetrahedron counts once in Cases[4].
	Cases [5]int64
}

// Integral returns Σ Density·Width.
func (h *Histogram) Integral() float64 { return floats.Sum(h.Density) * h.Width }

// ComputeDOS integrates field band_i of m. See ComputeFieldDOS.
func ComputeDOS(m *Mesh, band int, opts ...Option) (*Histogram, error) {
	h, err := ComputeFieldDOS(m, BandFieldName(band), opts...)
	if err != nil {
		return nil, err
	}
	h.Band = band

	return h, nil
}

// ComputeAllDOS integrates band_0 … band_{BandCount()−1}.
// Errors: ErrMissingField when the mesh has no band fields.
func ComputeAllDOS(m *Mesh, opts ...Option) ([]*Histogram, error) {
	n := m.BandCount()
	if n == 0 {
		return nil, fmt.Errorf("%s0: %w", bandPrefix, ErrMissingField)
	}
	out := make([]*Histogram, n)
	for b := 0; b < n; b++ {
		h, err := ComputeDOS(m, b, opts...)
		if err != nil {
			return nil, err
		}
		out[b] = h
	}

	return out, nil
}

// ComputeFieldDOS integrates the named field with the linear tetrahedron method.
// Implementation:
//   - Stage 1: resolve the field and the energy window; a flat field gets a
//     narrow window centred on the middle bin.
//   - Stage 2: split tetrahedra into contiguous chunks; every worker adds
//     N_T(edge[i+1]) − N_T(edge[i]) to a private histogram for the edges
//     spanning [min corner, max corner] of each tetrahedron. A tetrahedron
//     with four equal corners is a step of its whole volume and goes into
//     the bin holding that energy.
//   - Stage 3: merge the private histograms in chunk order and divide by the
//     bin width (and the mesh volume with unit normalization).
//
// Field values are finite: SetField and AttachBands reject anything else.
//
// Errors: ErrMissingField, ErrInvalidBins.
// Complexity: O(T·k) where k is the number of edges a tetrahedron spans.
func ComputeFieldDOS(m *Mesh, field string, opts ...Option) (*Histogram, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Bins <= 0 {
		return nil, fmt.Errorf("bins=%d: %w", o.Bins, ErrInvalidBins)
	}
	values, err := m.Field(field)
	if err != nil {
		return nil, err
	}

	lo, hi := o.Lo, o.Hi
	if !(hi > lo) {
		lo, hi = floats.Min(values), floats.Max(values)
		if hi == lo {
			lo, hi = flatWindow(lo, o.Bins)
		}
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("field %q window [%g, %g]: %w", field, lo, hi, ErrInvalidBins)
	}

	edges := make([]float64, o.Bins+1)
	floats.Span(edges, lo, hi)
	edges[o.Bins] = hi
	width := (hi - lo) / float64(o.Bins)

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > m.TetraCount() {
		workers = m.TetraCount()
	}
	parts := make([]partial, workers)
	chunk := (m.TetraCount() + workers - 1) / workers
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		from := w * chunk
		to := min(from+chunk, m.TetraCount())
		p := &parts[w]
		p.acc = make([]float64, o.Bins)
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.accumulate(m, values, edges, from, to)
		}()
	}
	wg.Wait()

	h := &Histogram{
		Band:     -1,
		Field:    field,
		Energies: make([]float64, o.Bins),
		Density:  make([]float64, o.Bins),
		Width:    width,
	}
	for _, p := range parts {
		floats.Add(h.Density, p.acc)
		for c := range h.Cases {
			h.Cases[c] += p.cases[c]
		}
	}
	scale := 1 / width
	if o.UnitNormalization {
		if v := m.Volume(); v > 0 {
			scale /= v
		}
	}
	floats.Scale(scale, h.Density)
	for i := range h.Energies {
		h.Energies[i] = (edges[i] + edges[i+1]) / 2
	}

	o.Metrics.AddTetrahedra(m.TetraCount())
	o.Logger.Info("dos computed",
		zap.String("field", field),
		zap.Int("tetrahedra", m.TetraCount()),
		zap.Int("bins", o.Bins),
		zap.Float64("emin", lo),
		zap.Float64("emax", hi),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return h, nil
}

// flatWindow returns a window of `bins` bins whose middle bin is centred on e.
func flatWindow(e float64, bins int) (lo, hi float64) {
	w := 1e-6 * math.Max(1, math.Abs(e))
	lo = e - (float64(bins/2)+0.5)*w

	return lo, lo + float64(bins)*w
}

// partial is the private histogram of one worker.
type partial struct {
	acc   []float64 // ΔN per bin
	cases [5]int64
}

// accumulate adds the contributions of tetrahedra [from, to).
func (p *partial) accumulate(m *Mesh, values, edges []float64, from, to int) {
	var (
		bins     = len(edges) - 1
		lo       = edges[0]
		width    = (edges[bins] - lo) / float64(bins)
		e        [4]float64
		t, i     int
		iLo, iHi int
		vol      float64
		prev, nx float64
		c        int
	)
	for t = from; t < to; t++ {
		vol = m.vols[t]
		if vol == 0 {
			continue
		}
		tet := m.tets[t]
		e = [4]float64{values[tet[0]], values[tet[1]], values[tet[2]], values[tet[3]]}
		sort4(&e)
		if e[0] == e[3] {
			p.step(e[0], vol, edges)
			continue
		}

		// Edges outside [iLo, iHi] see N = 0 below and N = vol above, so
		// the bins there receive no contribution.
		iLo = clampInt(int(math.Floor((e[0]-lo)/width))-1, 0, bins)
		iHi = clampInt(int(math.Ceil((e[3]-lo)/width))+1, 0, bins)
		prev, c = cumulative(&e, vol, edges[iLo])
		p.cases[c]++
		for i = iLo; i < iHi; i++ {
			nx, c = cumulative(&e, vol, edges[i+1])
			p.cases[c]++
			p.acc[i] += nx - prev
			prev = nx
		}
	}
}

// step puts the volume of a flat tetrahedron at energy e into its bin. The
// window is closed at both ends, so e == hi lands in the last bin; energies
// outside it contribute nothing.
func (p *partial) step(e, vol float64, edges []float64) {
	p.cases[4]++
	bins := len(edges) - 1
	lo, hi := edges[0], edges[bins]
	if e < lo || e > hi {
		return
	}
	width := (hi - lo) / float64(bins)
	p.acc[clampInt(int((e-lo)/width), 0, bins-1)] += vol
}

// cumulative returns N_T(E), the volume of the tetrahedron where the linear
// interpolation of the sorted corner energies e is below E, and the number
// of corners strictly below E.
func cumulative(e *[4]float64, vol, E float64) (float64, int) {
	switch {
	case E <= e[0]:
		return 0, 0
	case E <= e[1]:
		d := E - e[0]
		return vol * d * d * d / ((e[1] - e[0]) * (e[2] - e[0]) * (e[3] - e[0])), 1
	case E <= e[2]:
		e21, e31, e41 := e[1]-e[0], e[2]-e[0], e[3]-e[0]
		e32, e42 := e[2]-e[1], e[3]-e[1]
		d := E - e[1]
		n := e21*e21 + 3*e21*d + 3*d*d - (e31+e42)/(e32*e42)*d*d*d
		return vol * n / (e31 * e41), 2
	case E <= e[3]:
		d := e[3] - E
		return vol * (1 - d*d*d/((e[3]-e[0])*(e[3]-e[1])*(e[3]-e[2]))), 3
	default:
		return vol, 4
	}
}

// sort4 orders four values ascending with a five-comparator network.
func sort4(e *[4]float64) {
	if e[0] > e[1] {
		e[0], e[1] = e[1], e[0]
	}
	if e[2] > e[3] {
		e[2], e[3] = e[3], e[2]
	}
	if e[0] > e[2] {
		e[0], e[2] = e[2], e[0]
	}
	if e[1] > e[3] {
		e[1], e[3] = e[3], e[1]
	}
	if e[1] > e[2] {
		e[1], e[2] = e[2], e[1]
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
