package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/epmbands/matrix"
)

// ExampleRealEmbedding recovers the spectrum of the Pauli matrix σy, whose
// eigenvalues ±1 appear twice in the real embedding.
func ExampleRealEmbedding() {
	h, _ := matrix.NewHermitian(2)
	_ = h.SetPair(0, 1, -1i)

	emb, _ := matrix.RealEmbedding(h, nil)
	eigs, _ := matrix.Jacobi(emb, 0, 0)
	for _, e := range eigs {
		fmt.Printf("%.6f\n", e)
	}
	// Output:
	// -1.000000
	// -1.000000
	// 1.000000
	// 1.000000
}
