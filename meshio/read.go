package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/bzmesh"
)

// tetraType is the Gmsh element type of a 4-node tetrahedron.
const tetraType = 4

// lineReader yields trimmed lines and tracks the line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (r *lineReader) next() (string, bool) {
	for r.sc.Scan() {
		r.line++
		if s := strings.TrimSpace(r.sc.Text()); s != "" {
			return s, true
		}
	}

	return "", false
}

// mustNext returns the next line or an ErrFormat naming what was expected.
func (r *lineReader) mustNext(what string) (string, error) {
	s, ok := r.next()
	if !ok {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", formatErrorf(r.line, "unexpected end of file, want %s", what)
	}

	return s, nil
}

func (r *lineReader) count(what string) (int, error) {
	s, err := r.mustNext(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, formatErrorf(r.line, "bad %s %q", what, s)
	}

	return n, nil
}

func (r *lineReader) expect(tag string) error {
	s, err := r.mustNext(tag)
	if err != nil {
		return err
	}
	if s != tag {
		return formatErrorf(r.line, "got %q, want %s", s, tag)
	}

	return nil
}

// rawField is a $NodeData block before node ids are resolved.
type rawField struct {
	name   string
	line   int
	values map[int]float64
}

// Read parses an MSH 2.2 ASCII stream.
// Implementation:
//   - Stage 1: scan sections, collecting nodes by id, tetrahedra by node id
//     and single-component node data.
//   - Stage 2: map node ids to dense indices and build the mesh.
//   - Stage 3: attach every field; a field must cover every node.
//
// Errors: ErrFormat (with line), ErrUnsupported, bzmesh errors from New.
func Read(r io.Reader) (*bzmesh.Mesh, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	lr.sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		ids    []int
		coords []r3.Vec
		tets   [][4]int // node ids
		fields []rawField
		seen   bool
	)
	for {
		s, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return nil, err
			}
			break
		}
		switch s {
		case "$MeshFormat":
			if err := readFormat(lr); err != nil {
				return nil, err
			}
			seen = true
		case "$Nodes":
			var err error
			if ids, coords, err = readNodes(lr); err != nil {
				return nil, err
			}
		case "$Elements":
			var err error
			if tets, err = readElements(lr); err != nil {
				return nil, err
			}
		case "$NodeData":
			f, err := readNodeData(lr)
			if err != nil {
				return nil, err
			}
			if f != nil {
				fields = append(fields, *f)
			}
		default:
			if !strings.HasPrefix(s, "$") {
				return nil, formatErrorf(lr.line, "unexpected %q outside a section", s)
			}
			if err := skipSection(lr, s); err != nil {
				return nil, err
			}
		}
	}
	if !seen {
		return nil, formatErrorf(lr.line, "missing $MeshFormat")
	}

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	conn := make([][4]int, len(tets))
	for t, tet := range tets {
		for a, id := range tet {
			i, ok := index[id]
			if !ok {
				return nil, fmt.Errorf("tetrahedron %d references node %d: %w", t, id, ErrFormat)
			}
			conn[t][a] = i
		}
	}
	m, err := bzmesh.New(coords, conn)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		if len(f.values) != len(ids) {
			return nil, formatErrorf(f.line, "field %q covers %d of %d nodes", f.name, len(f.values), len(ids))
		}
		values := make([]float64, len(ids))
		for id, v := range f.values {
			i, ok := index[id]
			if !ok {
				return nil, formatErrorf(f.line, "field %q references node %d", f.name, id)
			}
			values[i] = v
		}
		if err = m.SetField(f.name, values); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*bzmesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func readFormat(lr *lineReader) error {
	s, err := lr.mustNext("format line")
	if err != nil {
		return err
	}
	parts := strings.Fields(s)
	if len(parts) < 3 {
		return formatErrorf(lr.line, "format line %q", s)
	}
	if !strings.HasPrefix(parts[0], "2.") {
		return fmt.Errorf("line %d: version %s: %w", lr.line, parts[0], ErrUnsupported)
	}
	if parts[1] != "0" {
		return fmt.Errorf("line %d: binary file: %w", lr.line, ErrUnsupported)
	}

	return lr.expect("$EndMeshFormat")
}

func readNodes(lr *lineReader) ([]int, []r3.Vec, error) {
	n, err := lr.count("node count")
	if err != nil {
		return nil, nil, err
	}
	ids := make([]int, n)
	coords := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		s, err := lr.mustNext("node")
		if err != nil {
			return nil, nil, err
		}
		f := strings.Fields(s)
		if len(f) != 4 {
			return nil, nil, formatErrorf(lr.line, "node %q needs id x y z", s)
		}
		if ids[i], err = strconv.Atoi(f[0]); err != nil {
			return nil, nil, formatErrorf(lr.line, "node id %q", f[0])
		}
		var xyz [3]float64
		for a := 0; a < 3; a++ {
			if xyz[a], err = strconv.ParseFloat(f[a+1], 64); err != nil {
				return nil, nil, formatErrorf(lr.line, "coordinate %q", f[a+1])
			}
		}
		coords[i] = r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	}

	return ids, coords, lr.expect("$EndNodes")
}

func readElements(lr *lineReader) ([][4]int, error) {
	n, err := lr.count("element count")
	if err != nil {
		return nil, err
	}
	tets := make([][4]int, 0, n)
	for i := 0; i < n; i++ {
		s, err := lr.mustNext("element")
		if err != nil {
			return nil, err
		}
		f := strings.Fields(s)
		if len(f) < 3 {
			return nil, formatErrorf(lr.line, "element %q", s)
		}
		typ, err1 := strconv.Atoi(f[1])
		ntags, err2 := strconv.Atoi(f[2])
		if err1 != nil || err2 != nil || ntags < 0 || len(f) < 3+ntags {
			return nil, formatErrorf(lr.line, "element header %q", s)
		}
		if typ != tetraType {
			continue
		}
		nodes := f[3+ntags:]
		if len(nodes) != 4 {
			return nil, formatErrorf(lr.line, "tetrahedron with %d nodes", len(nodes))
		}
		var tet [4]int
		for a := range tet {
			if tet[a], err = strconv.Atoi(nodes[a]); err != nil {
				return nil, formatErrorf(lr.line, "node id %q", nodes[a])
			}
		}
		tets = append(tets, tet)
	}

	return tets, lr.expect("$EndElements")
}

// readNodeData returns nil for blocks with more than one component.
func readNodeData(lr *lineReader) (*rawField, error) {
	start := lr.line
	tags := func(what string) ([]string, error) {
		n, err := lr.count(what + " tag count")
		if err != nil {
			return nil, err
		}
		out := make([]string, n)
		for i := range out {
			if out[i], err = lr.mustNext(what + " tag"); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	strs, err := tags("string")
	if err != nil {
		return nil, err
	}
	if _, err = tags("real"); err != nil {
		return nil, err
	}
	ints, err := tags("integer")
	if err != nil {
		return nil, err
	}
	if len(strs) == 0 || len(ints) < 3 {
		return nil, formatErrorf(lr.line, "$NodeData needs a name and 3 integer tags")
	}
	comps, err1 := strconv.Atoi(ints[1])
	count, err2 := strconv.Atoi(ints[2])
	if err1 != nil || err2 != nil || comps < 1 || count < 0 {
		return nil, formatErrorf(lr.line, "integer tags %v", ints)
	}

	f := &rawField{name: strings.Trim(strs[0], `"`), line: start, values: make(map[int]float64, count)}
	for i := 0; i < count; i++ {
		s, err := lr.mustNext("node value")
		if err != nil {
			return nil, err
		}
		if comps != 1 {
			continue
		}
		p := strings.Fields(s)
		if len(p) != 2 {
			return nil, formatErrorf(lr.line, "node value %q", s)
		}
		id, err := strconv.Atoi(p[0])
		if err != nil {
			return nil, formatErrorf(lr.line, "node id %q", p[0])
		}
		v, err := strconv.ParseFloat(p[1], 64)
		if err != nil {
			return nil, formatErrorf(lr.line, "value %q", p[1])
		}
		f.values[id] = v
	}
	if err = lr.expect("$EndNodeData"); err != nil {
		return nil, err
	}
	if comps != 1 {
		return nil, nil
	}

	return f, nil
}

func skipSection(lr *lineReader, open string) error {
	end := "$End" + strings.TrimPrefix(open, "$")
	for {
		s, err := lr.mustNext(end)
		if err != nil {
			return err
		}
		if s == end {
			return nil
		}
	}
}
