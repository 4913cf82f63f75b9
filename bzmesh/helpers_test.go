package bzmesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/bzmesh"
)

// cubeMesh splits [0,1]³ into n³ cubes of six Kuhn tetrahedra each.
func cubeMesh(t testing.TB, n int) *bzmesh.Mesh {
	t.Helper()
	id := func(i, j, k int) int { return (i*(n+1)+j)*(n+1) + k }
	nodes := make([]r3.Vec, 0, (n+1)*(n+1)*(n+1))
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			for k := 0; k <= n; k++ {
				nodes = append(nodes, r3.Vec{X: float64(i) / float64(n), Y: float64(j) / float64(n), Z: float64(k) / float64(n)})
			}
		}
	}
	perms := [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	var tets [][4]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for _, p := range perms {
					c := [3]int{i, j, k}
					var tet [4]int
					tet[0] = id(c[0], c[1], c[2])
					for s := 0; s < 3; s++ {
						c[p[s]]++
						tet[s+1] = id(c[0], c[1], c[2])
					}
					tets = append(tets, tet)
				}
			}
		}
	}
	m, err := bzmesh.New(nodes, tets)
	require.NoError(t, err)

	return m
}

// fieldOf evaluates f at every node of m.
func fieldOf(m *bzmesh.Mesh, f func(r3.Vec) float64) []float64 {
	nodes := m.Nodes()
	out := make([]float64, len(nodes))
	for i, p := range nodes {
		out[i] = f(p)
	}

	return out
}
