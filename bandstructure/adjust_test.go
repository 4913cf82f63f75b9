package bandstructure_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/bandstructure"
)

func handResult() *bandstructure.Result {
	return &bandstructure.Result{
		Material: "X",
		KPoints:  []r3.Vec{{X: 0.5, Y: 0.5, Z: 0.5}, {}, {Y: 1}},
		Energies: [][]float64{
			{-3, 1.0, 2.5, 4},
			{-4, 1.5, 3.0, 5},
			{-2, 0.5, 2.0, 6},
		},
	}
}

func TestAdjustValenceMaximum(t *testing.T) {
	res := handResult()
	gap, err := bandstructure.Adjust(res, 2, bandstructure.ValenceMaximum)
	require.NoError(t, err)

	require.Equal(t, 1.5, gap.Shift)
	require.Equal(t, 0.0, gap.VBM)
	require.Equal(t, 1, gap.VBMIndex)
	require.Equal(t, 0.5, gap.CBM)
	require.Equal(t, 2, gap.CBMIndex)
	require.Equal(t, 0.5, gap.Value)
	require.False(t, gap.Metallic)
	require.False(t, gap.Direct(res))
	require.Equal(t, 1.5, res.Offset)
	require.Equal(t, []float64{-5.5, 0, 1.5, 3.5}, res.Energies[1])
}

func TestAdjustMidGap(t *testing.T) {
	res := handResult()
	gap, err := bandstructure.Adjust(res, 2, bandstructure.MidGap)
	require.NoError(t, err)
	require.Equal(t, 1.75, gap.Shift)
	require.Equal(t, -0.25, gap.VBM)
	require.Equal(t, 0.25, gap.CBM)
	require.Equal(t, 0.5, gap.Value)
}

func TestAdjustMetallicIsReported(t *testing.T) {
	res := handResult()
	res.Energies[0][2] = 1.2 // conduction dips below the valence maximum
	gap, err := bandstructure.Adjust(res, 2, bandstructure.ValenceMaximum)
	require.NoError(t, err)
	require.True(t, gap.Metallic)
	require.InDelta(t, -0.3, gap.Value, 1e-12)
}

func TestAdjustErrors(t *testing.T) {
	_, err := bandstructure.Adjust(nil, 1, bandstructure.ValenceMaximum)
	require.ErrorIs(t, err, bandstructure.ErrEmptyResult)

	_, err = bandstructure.Adjust(&bandstructure.Result{}, 1, bandstructure.ValenceMaximum)
	require.ErrorIs(t, err, bandstructure.ErrEmptyResult)

	for _, v := range []int{0, 4, 7} {
		_, err = bandstructure.Adjust(handResult(), v, bandstructure.ValenceMaximum)
		require.ErrorIs(t, err, bandstructure.ErrValenceBands, "valence=%d", v)
	}
}

func TestParseReference(t *testing.T) {
	r, err := bandstructure.ParseReference("")
	require.NoError(t, err)
	require.Equal(t, bandstructure.ValenceMaximum, r)

	r, err = bandstructure.ParseReference("MidGap")
	require.NoError(t, err)
	require.Equal(t, bandstructure.MidGap, r)
	require.Equal(t, "midgap", r.String())

	_, err = bandstructure.ParseReference("fermi")
	require.ErrorIs(t, err, bandstructure.ErrUnknownReference)
}

func TestResultBandAndClone(t *testing.T) {
	res := handResult()
	require.Equal(t, []float64{1.0, 1.5, 0.5}, res.Band(1))

	cp := res.Clone()
	cp.Energies[0][0] = 99
	require.Equal(t, -3.0, res.Energies[0][0])
}
