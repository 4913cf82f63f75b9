// Package matrix_test provides benchmarks for the Hermitian kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/epmbands/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

func randomHermitian(b *testing.B, n int, seed int64) *matrix.Hermitian {
	b.Helper()
	h, err := matrix.NewHermitian(n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		if err = h.SetDiag(i, rng.NormFloat64()); err != nil {
			b.Fatal(err)
		}
		for j := i + 1; j < n; j++ {
			if err = h.SetPair(i, j, complex(rng.NormFloat64(), rng.NormFloat64())); err != nil {
				b.Fatal(err)
			}
		}
	}

	return h
}

func BenchmarkRealEmbedding(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			h := randomHermitian(b, n, 101)
			dst, err := matrix.NewDense(2*n, 2*n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkM, err = matrix.RealEmbedding(h, dst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkJacobi(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			h := randomHermitian(b, n, 202)
			emb, err := matrix.RealEmbedding(h, nil)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkV, err = matrix.Jacobi(emb, 0, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
