package bandstructure_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/epmbands/bandstructure"
)

func BenchmarkCompute(b *testing.B) {
	bld := newBuilder(b, "Si", 10, false)
	kpts := samplePath(b, "LGXUG", 10)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := bandstructure.Compute(bld, kpts, 8, bandstructure.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
