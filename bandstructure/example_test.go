package bandstructure_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/bandstructure"
)

func ExampleAdjust() {
	res := &bandstructure.Result{
		KPoints: []r3.Vec{{}, {Y: 1}},
		Energies: [][]float64{
			{-1.0, 2.0},
			{-1.5, 1.25},
		},
	}
	gap, err := bandstructure.Adjust(res, 1, bandstructure.ValenceMaximum)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("gap %.2f eV, direct %v\n", gap.Value, gap.Direct(res))
	fmt.Println(res.Energies)
	// Output:
	// gap 2.25 eV, direct false
	// [[0 3] [-0.5 2.25]]
}
