package basis_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/epmbands/basis"
)

var sinkSet basis.Set

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{5, 10, 20} {
		b.Run(fmt.Sprintf("shells=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, err := basis.Generate(n, basis.FCC)
				if err != nil {
					b.Fatal(err)
				}
				sinkSet = s
			}
		})
	}
}
