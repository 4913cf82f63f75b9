package basis_test

import (
	"fmt"

	"github.com/katalvlaran/epmbands/basis"
)

// ExampleGenerate builds the silicon basis: the origin plus ten FCC shells.
func ExampleGenerate() {
	set, err := basis.Generate(10, basis.FCC)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(set.Len(), set.Shells()[1], set.At(1))
	// Output: 169 3 (-1,-1,-1)
}
