package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/epmbands/bzmesh"
)

// Write encodes m as MSH 2.2 ASCII: 1-based node and element ids, every
// tetrahedron as type 4 and every field as a single-component $NodeData
// block in FieldNames order.
func Write(w io.Writer, m *bzmesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	nodes := m.Nodes()
	fmt.Fprintf(bw, "$Nodes\n%d\n", len(nodes))
	for i, p := range nodes {
		fmt.Fprintf(bw, "%d %s %s %s\n", i+1, ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	fmt.Fprint(bw, "$EndNodes\n")

	tets := m.Tetrahedra()
	fmt.Fprintf(bw, "$Elements\n%d\n", len(tets))
	for i, t := range tets {
		fmt.Fprintf(bw, "%d %d 2 1 1 %d %d %d %d\n", i+1, tetraType, t[0]+1, t[1]+1, t[2]+1, t[3]+1)
	}
	fmt.Fprint(bw, "$EndElements\n")

	for _, name := range m.FieldNames() {
		values, err := m.Field(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "$NodeData\n1\n%q\n1\n0.0\n3\n0\n1\n%d\n", name, len(values))
		for i, v := range values {
			fmt.Fprintf(bw, "%d %s\n", i+1, ftoa(v))
		}
		fmt.Fprint(bw, "$EndNodeData\n")
	}

	return bw.Flush()
}

// WriteFile creates path and writes m to it.
func WriteFile(path string, m *bzmesh.Mesh) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, m)
}

// ftoa formats v with the shortest representation that round-trips.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
