package material_test

import (
	"fmt"

	"github.com/katalvlaran/epmbands/material"
)

func ExampleRegistry_Lookup() {
	reg := material.Builtin()
	ge, err := reg.Lookup("Ge")
	if err != nil {
		fmt.Println(err)
		return
	}
	vs, _ := ge.FormFactor(11)
	fmt.Println(ge.Name, ge.LatticeConstant, vs)

	_, err = reg.Lookup("Xx")
	fmt.Println(err)
	// Output:
	// Germanium 5.66 0.06
	// "Xx": material: unknown material
}
