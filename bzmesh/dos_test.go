package bzmesh_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/bzmesh"
)

func TestDOSIntegratesToVolume(t *testing.T) {
	m := cubeMesh(t, 4)
	require.NoError(t, m.SetField("band_0", fieldOf(m, func(p r3.Vec) float64 { return r3.Norm2(p) })))

	h, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(50))
	require.NoError(t, err)
	require.Equal(t, 0, h.Band)
	require.Len(t, h.Density, 50)
	require.InDelta(t, m.Volume(), h.Integral(), 1e-12)
	for i, d := range h.Density {
		require.GreaterOrEqual(t, d, -1e-12, "bin %d", i)
	}
	require.InDelta(t, 0.0, h.Energies[0]-h.Width/2, 1e-15, "window starts at the field minimum")

	m.Scale(3)
	u, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(50), bzmesh.WithUnitNormalization())
	require.NoError(t, err)
	require.InDelta(t, 1.0, u.Integral(), 1e-12)
}

func TestDOSExactForLinearField(t *testing.T) {
	// E = x on the unit cube: one state per unit energy everywhere in [0, 1].
	m := cubeMesh(t, 3)
	require.NoError(t, m.SetField("band_0", fieldOf(m, func(p r3.Vec) float64 { return p.X })))

	h, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(12))
	require.NoError(t, err)
	for i, d := range h.Density {
		require.InDelta(t, 1.0, d, 1e-9, "bin %d", i)
	}
	require.Positive(t, h.Cases[1]+h.Cases[2]+h.Cases[3])
}

func TestDOSWorkerCountInvariant(t *testing.T) {
	m := cubeMesh(t, 5)
	require.NoError(t, m.SetField("band_0", fieldOf(m, func(p r3.Vec) float64 {
		return p.X*p.X - 0.5*p.Y + p.Y*p.Z
	})))

	seq, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(40))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 7, 10000} {
		par, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(40), bzmesh.WithWorkers(w))
		require.NoError(t, err)
		if diff := cmp.Diff(seq.Density, par.Density, cmpopts.EquateApprox(1e-12, 1e-12)); diff != "" {
			t.Fatalf("workers=%d (-seq +par):\n%s", w, diff)
		}
		require.Equal(t, seq.Cases, par.Cases)
	}
}

func TestDOSFlatSingleTetrahedron(t *testing.T) {
	const e0 = -2.5
	m, err := bzmesh.New([]r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}, [][4]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, m.SetField("band_0", []float64{e0, e0, e0, e0}))

	h, err := bzmesh.ComputeDOS(m, 0)
	require.NoError(t, err)
	require.Len(t, h.Density, bzmesh.DefaultBins)

	mid := bzmesh.DefaultBins / 2
	require.InDelta(t, e0, h.Energies[mid], 1e-9)
	for i, d := range h.Density {
		if i == mid {
			require.Positive(t, d)
			continue
		}
		require.Zero(t, d, "bin %d", i)
	}
	require.InDelta(t, 1.0/6, h.Integral(), 1e-12)
	require.Zero(t, h.Cases[1]+h.Cases[2]+h.Cases[3])
}

func TestDOSPlateauAtMaximum(t *testing.T) {
	m := cubeMesh(t, 4)
	require.NoError(t, m.SetField("band_0", fieldOf(m, func(p r3.Vec) float64 { return math.Min(p.X, 0.5) })))

	h, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(20), bzmesh.WithWorkers(3))
	require.NoError(t, err)
	require.InDelta(t, m.Volume(), h.Integral(), 1e-12)
	// Flat half of the cube plus the top 0.025 of the ramp x ∈ [0, 0.5].
	require.InDelta(t, 0.525, h.Density[len(h.Density)-1]*h.Width, 1e-12)
}

func TestDOSRampAndFlatTop(t *testing.T) {
	nodes := []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}}
	m, err := bzmesh.New(nodes, [][4]int{{0, 1, 2, 3}, {1, 2, 3, 4}})
	require.NoError(t, err)
	require.NoError(t, m.SetField("band_0", []float64{0, 1, 1, 1, 1}))

	h, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(10))
	require.NoError(t, err)
	require.InDelta(t, m.Volume(), h.Integral(), 1e-12)
	// Last bin: the flat tetrahedron (1/3) plus the top of the ramp, N(1) − N(0.9) = (1 − 0.9³)/6.
	require.InDelta(t, 1.0/3+(1-0.729)/6, h.Density[9]*h.Width, 1e-12)
}

func TestDOSFlatOutsideFixedRange(t *testing.T) {
	m, err := bzmesh.New([]r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}, [][4]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, m.SetField("band_0", []float64{2, 2, 2, 2}))

	h, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(4), bzmesh.WithRange(0, 1))
	require.NoError(t, err)
	require.Zero(t, h.Integral())

	h, err = bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(4), bzmesh.WithRange(0, 2))
	require.NoError(t, err)
	require.InDelta(t, 1.0/6, h.Density[3]*h.Width, 1e-15)
}

func TestDOSFixedRange(t *testing.T) {
	m := cubeMesh(t, 2)
	require.NoError(t, m.SetField("band_0", fieldOf(m, func(p r3.Vec) float64 { return p.Z })))

	// Only the lower half of the states falls inside [0, 0.5].
	h, err := bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(5), bzmesh.WithRange(0, 0.5))
	require.NoError(t, err)
	require.InDelta(t, 0.5, h.Integral(), 1e-12)
	require.InDelta(t, 0.1, h.Width, 1e-15)
}

func TestComputeAllDOS(t *testing.T) {
	m := cubeMesh(t, 2)
	rows := fieldOf(m, func(p r3.Vec) float64 { return p.X + p.Y })
	energies := make([][]float64, len(rows))
	for i, e := range rows {
		energies[i] = []float64{e, 2 * e}
	}
	require.NoError(t, m.AttachBands(energies))

	hs, err := bzmesh.ComputeAllDOS(m, bzmesh.WithBins(20), bzmesh.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, hs, 2)
	for i, h := range hs {
		require.Equal(t, i, h.Band)
		require.Equal(t, bzmesh.BandFieldName(i), h.Field)
		require.InDelta(t, 1.0, h.Integral(), 1e-12)
	}
}

func TestDOSErrors(t *testing.T) {
	m := cubeMesh(t, 1)
	_, err := bzmesh.ComputeDOS(m, 0)
	require.ErrorIs(t, err, bzmesh.ErrMissingField)

	_, err = bzmesh.ComputeAllDOS(m)
	require.ErrorIs(t, err, bzmesh.ErrMissingField)

	require.NoError(t, m.SetField("band_0", make([]float64, m.NodeCount())))
	_, err = bzmesh.ComputeDOS(m, 0, bzmesh.WithBins(0))
	require.ErrorIs(t, err, bzmesh.ErrInvalidBins)
}
