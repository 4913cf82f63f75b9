package kpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/kpath"
)

func TestSampleLGXUG(t *testing.T) {
	p, err := kpath.SampleString("LGXUG", 80)
	require.NoError(t, err)
	require.Equal(t, 320, p.Len(), "4 segments × 80 points")
	require.Equal(t, []int{0, 80, 160, 240, 320}, p.SegmentStarts)
	require.Equal(t, "LGXUG", p.String())

	require.Equal(t, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, p.Points[0], "L opens the path")
	require.Equal(t, r3.Vec{}, p.Points[79], "Γ closes segment L→Γ")
	require.Equal(t, r3.Vec{}, p.Points[80], "Γ opens segment Γ→X")
	require.Equal(t, r3.Vec{X: 0, Y: 1, Z: 0}, p.Points[159])
	require.Equal(t, r3.Vec{}, p.Points[319], "Γ closes the path")
}

func TestSampleInterpolates(t *testing.T) {
	p, err := kpath.Sample([]string{"G", "X"}, 5)
	require.NoError(t, err)
	for j, want := range []float64{0, 0.25, 0.5, 0.75, 1} {
		require.InDelta(t, want, p.Points[j].Y, 1e-15, "point %d", j)
		require.Zero(t, p.Points[j].X)
	}

	d := p.Distances()
	require.InDelta(t, 1.0, d[len(d)-1], 1e-15)
}

func TestDistancesFlatAtJoints(t *testing.T) {
	p, err := kpath.SampleString("GXG", 3)
	require.NoError(t, err)
	d := p.Distances()
	require.Equal(t, d[2], d[3], "duplicated X adds no length")
	require.InDelta(t, 2.0, d[5], 1e-15)
}

func TestParseLabels(t *testing.T) {
	labels, err := kpath.ParseLabels("LΓx")
	require.NoError(t, err)
	require.Equal(t, []string{"L", "G", "X"}, labels)

	_, err = kpath.ParseLabels("LQX")
	require.ErrorIs(t, err, kpath.ErrUnknownPoint)
	require.Contains(t, err.Error(), `"Q"`)

	_, err = kpath.ParseLabels("L")
	require.ErrorIs(t, err, kpath.ErrPathTooShort)
}

func TestSampleErrors(t *testing.T) {
	_, err := kpath.Sample([]string{"G", "X"}, 1)
	require.ErrorIs(t, err, kpath.ErrTooFewPoints)

	_, err = kpath.Sample([]string{"G", "Z"}, 10)
	require.ErrorIs(t, err, kpath.ErrUnknownPoint)

	_, err = kpath.Sample(nil, 10)
	require.ErrorIs(t, err, kpath.ErrPathTooShort)
}

func TestDefaultPathsParse(t *testing.T) {
	for _, s := range kpath.DefaultPaths() {
		_, err := kpath.ParseLabels(s)
		require.NoError(t, err, s)
	}
	for _, l := range kpath.Labels() {
		_, err := kpath.Point(l)
		require.NoError(t, err, l)
	}
}
