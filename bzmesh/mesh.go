package bzmesh

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// bandPrefix names the per-band energy fields.
const bandPrefix = "band_"

// BandFieldName returns the field name of band i, e.g. "band_3".
func BandFieldName(i int) string { return bandPrefix + strconv.Itoa(i) }

// Tetrahedron is one mesh element: four node indices and its volume.
type Tetrahedron struct {
	Nodes  [4]int
	Volume float64
}

// Mesh is a tetrahedral tessellation with named scalar fields per node.
// Geometry is fixed after New except for Scale; fields are added with
// SetField. A Mesh is not safe for concurrent mutation, but any number of
// ComputeDOS calls may read it at once.
type Mesh struct {
	nodes  []r3.Vec
	tets   [][4]int
	vols   []float64
	fields map[string][]float64
}

// New validates the connectivity and computes every tetrahedron volume.
// Errors: ErrEmptyMesh, ErrBadTetrahedron.
// Complexity: O(N + T).
func New(nodes []r3.Vec, tets [][4]int) (*Mesh, error) {
	if len(nodes) == 0 || len(tets) == 0 {
		return nil, ErrEmptyMesh
	}
	m := &Mesh{
		nodes:  append([]r3.Vec(nil), nodes...),
		tets:   append([][4]int(nil), tets...),
		vols:   make([]float64, len(tets)),
		fields: make(map[string][]float64),
	}
	for i, t := range m.tets {
		for a := 0; a < 4; a++ {
			if t[a] < 0 || t[a] >= len(nodes) {
				return nil, fmt.Errorf("tetrahedron %d: node %d out of range [0,%d): %w", i, t[a], len(nodes), ErrBadTetrahedron)
			}
			for b := a + 1; b < 4; b++ {
				if t[a] == t[b] {
					return nil, fmt.Errorf("tetrahedron %d: node %d repeated: %w", i, t[a], ErrBadTetrahedron)
				}
			}
		}
		m.vols[i] = m.volume(t)
	}

	return m, nil
}

// volume returns |(b−a)·((c−a)×(d−a))| / 6.
func (m *Mesh) volume(t [4]int) float64 {
	a := m.nodes[t[0]]
	ab := r3.Sub(m.nodes[t[1]], a)
	ac := r3.Sub(m.nodes[t[2]], a)
	ad := r3.Sub(m.nodes[t[3]], a)

	return math.Abs(r3.Dot(ab, r3.Cross(ac, ad))) / 6
}

// NodeCount returns the number of nodes.
func (m *Mesh) NodeCount() int { return len(m.nodes) }

// TetraCount returns the number of tetrahedra.
func (m *Mesh) TetraCount() int { return len(m.tets) }

// Nodes returns a copy of the node coordinates.
func (m *Mesh) Nodes() []r3.Vec { return append([]r3.Vec(nil), m.nodes...) }

// Tetrahedra returns a copy of the connectivity.
func (m *Mesh) Tetrahedra() [][4]int { return append([][4]int(nil), m.tets...) }

// Tetrahedron returns element i with its volume.
func (m *Mesh) Tetrahedron(i int) Tetrahedron { return Tetrahedron{Nodes: m.tets[i], Volume: m.vols[i]} }

// TetraVolume returns the volume of element i.
func (m *Mesh) TetraVolume(i int) float64 { return m.vols[i] }

// Volume returns the sum of all tetrahedron volumes.
func (m *Mesh) Volume() float64 {
	var v float64
	for _, x := range m.vols {
		v += x
	}

	return v
}

// CheckVolume compares Volume with expected.
// Errors: ErrVolumeMismatch when |V − expected| > relTol·|expected|.
func (m *Mesh) CheckVolume(expected, relTol float64) error {
	v := m.Volume()
	if math.Abs(v-expected) > relTol*math.Abs(expected) {
		return fmt.Errorf("volume %g, expected %g (tol %g): %w", v, expected, relTol, ErrVolumeMismatch)
	}

	return nil
}

// Scale multiplies every coordinate by f, e.g. 2π/a to move from lattice
// units to 1/Bohr. Volumes scale by |f|³.
func (m *Mesh) Scale(f float64) {
	for i := range m.nodes {
		m.nodes[i] = r3.Scale(f, m.nodes[i])
	}
	f3 := math.Abs(f * f * f)
	for i := range m.vols {
		m.vols[i] *= f3
	}
}

// SetField stores a copy of values under name, replacing any previous field.
// Errors: ErrFieldLength, ErrNonFinite.
func (m *Mesh) SetField(name string, values []float64) error {
	if len(values) != len(m.nodes) {
		return fmt.Errorf("field %q: %d values for %d nodes: %w", name, len(values), len(m.nodes), ErrFieldLength)
	}
	if err := checkFinite(name, values); err != nil {
		return err
	}
	m.fields[name] = append([]float64(nil), values...)

	return nil
}

// Field returns the values stored under name. The slice is shared with the
// mesh and must not be modified.
// Errors: ErrMissingField.
func (m *Mesh) Field(name string) ([]float64, error) {
	v, ok := m.fields[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMissingField)
	}

	return v, nil
}

// BandField returns the values of field band_i.
func (m *Mesh) BandField(i int) ([]float64, error) { return m.Field(BandFieldName(i)) }

// FieldNames returns every field name: band fields first in band order,
// then the others alphabetically.
func (m *Mesh) FieldNames() []string {
	names := make([]string, 0, len(m.fields))
	for n := range m.fields {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		bi, iok := bandIndex(names[i])
		bj, jok := bandIndex(names[j])
		switch {
		case iok && jok:
			return bi < bj
		case iok != jok:
			return iok
		default:
			return names[i] < names[j]
		}
	})

	return names
}

// BandCount returns n such that band_0 … band_{n−1} are all present.
func (m *Mesh) BandCount() int {
	n := 0
	for {
		if _, ok := m.fields[BandFieldName(n)]; !ok {
			return n
		}
		n++
	}
}

// AttachBands stores energies[node][band] as fields band_0 … band_{B−1}.
// Errors: ErrFieldLength when the row count differs from the node count or
// rows have different lengths; ErrNonFinite for a NaN or infinite energy.
// On error no field is changed.
func (m *Mesh) AttachBands(energies [][]float64) error {
	if len(energies) != len(m.nodes) {
		return fmt.Errorf("%d rows for %d nodes: %w", len(energies), len(m.nodes), ErrFieldLength)
	}
	bands := len(energies[0])
	for i, row := range energies {
		if len(row) != bands {
			return fmt.Errorf("row %d has %d bands, want %d: %w", i, len(row), bands, ErrFieldLength)
		}
	}
	cols := make([][]float64, bands)
	for b := range cols {
		cols[b] = make([]float64, len(energies))
		for i, row := range energies {
			cols[b][i] = row[b]
		}
		if err := checkFinite(BandFieldName(b), cols[b]); err != nil {
			return err
		}
	}
	for b, col := range cols {
		m.fields[BandFieldName(b)] = col
	}

	return nil
}

func checkFinite(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("field %q node %d = %g: %w", name, i, v, ErrNonFinite)
		}
	}

	return nil
}

func bandIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, bandPrefix) {
		return 0, false
	}
	i, err := strconv.Atoi(name[len(bandPrefix):])

	return i, err == nil && i >= 0
}
