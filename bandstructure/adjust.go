package bandstructure

import (
	"fmt"
	"math"
	"strings"
)

// Reference selects the energy placed at zero by Adjust.
type Reference int

const (
	// ValenceMaximum puts the highest valence energy at zero.
	ValenceMaximum Reference = iota
	// MidGap puts the middle of the gap at zero.
	MidGap
)

// String returns "vbm" or "midgap".
func (r Reference) String() string {
	if r == MidGap {
		return "midgap"
	}

	return "vbm"
}

// ParseReference maps "vbm" (default when empty) or "midgap" to a Reference.
func ParseReference(s string) (Reference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vbm", "valence-maximum":
		return ValenceMaximum, nil
	case "midgap", "mid-gap":
		return MidGap, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownReference)
	}
}

// Gap describes the valence/conduction separation found by Adjust.
// VBM and CBM are reported after the shift.
type Gap struct {
	VBM      float64 // highest valence energy, eV
	CBM      float64 // lowest conduction energy, eV
	VBMIndex int     // k-point index of the VBM
	CBMIndex int     // k-point index of the CBM
	Value    float64 // CBM − VBM, eV
	Metallic bool    // Value ≤ 0
	Shift    float64 // energy subtracted from every value, eV
}

// Adjust splits every row into valence bands [0, valenceBands) and
// conduction bands [valenceBands, Bands()), finds the valence maximum and
// conduction minimum over all k-points, and shifts every energy so that the
// reference sits at zero. A gap ≤ 0 is reported through Gap.Metallic, not as
// an error. Ties keep the first k-point index.
// Errors: ErrEmptyResult, ErrValenceBands.
// Complexity: O(K·bands).
func Adjust(res *Result, valenceBands int, ref Reference) (Gap, error) {
	if res == nil || res.Len() == 0 || res.Bands() == 0 {
		return Gap{}, ErrEmptyResult
	}
	if valenceBands <= 0 || valenceBands >= res.Bands() {
		return Gap{}, fmt.Errorf("valence=%d, bands=%d: %w", valenceBands, res.Bands(), ErrValenceBands)
	}

	g := Gap{VBM: math.Inf(-1), CBM: math.Inf(1)}
	var (
		k, j int
		e    float64
	)
	for k = range res.Energies {
		row := res.Energies[k]
		for j = 0; j < valenceBands; j++ {
			if e = row[j]; e > g.VBM {
				g.VBM, g.VBMIndex = e, k
			}
		}
		for j = valenceBands; j < len(row); j++ {
			if e = row[j]; e < g.CBM {
				g.CBM, g.CBMIndex = e, k
			}
		}
	}
	g.Value = g.CBM - g.VBM
	g.Metallic = g.Value <= 0

	switch ref {
	case MidGap:
		g.Shift = (g.VBM + g.CBM) / 2
	default:
		g.Shift = g.VBM
	}
	for k = range res.Energies {
		for j = range res.Energies[k] {
			res.Energies[k][j] -= g.Shift
		}
	}
	g.VBM -= g.Shift
	g.CBM -= g.Shift
	res.Offset += g.Shift

	return g, nil
}

// Direct reports whether the VBM and CBM sit at the same k-point of res.
func (g Gap) Direct(res *Result) bool {
	return res.KPoints[g.VBMIndex] == res.KPoints[g.CBMIndex]
}
