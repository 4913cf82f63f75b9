package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/epmbands/bandstructure"
)

// BandsFilename returns "<material>_<path>_<bands>bands.txt".
func BandsFilename(material, path string, bands int) string {
	return fmt.Sprintf("%s_%s_%dbands.txt", material, path, bands)
}

// KPointsFilename returns "<material>_<path>_kpoints.txt".
func KPointsFilename(material, path string) string {
	return fmt.Sprintf("%s_%s_kpoints.txt", material, path)
}

// WriteBands writes one line per k-point holding its energies, ascending,
// separated by single spaces.
func WriteBands(w io.Writer, res *bandstructure.Result) error {
	return writeRows(w, res, false)
}

// WriteBandsWithKPoints prefixes every line with kx ky kz.
func WriteBandsWithKPoints(w io.Writer, res *bandstructure.Result) error {
	return writeRows(w, res, true)
}

// WriteKPoints writes one "kx ky kz" line per point.
func WriteKPoints(w io.Writer, pts []r3.Vec) error {
	bw := bufio.NewWriter(w)
	for _, k := range pts {
		writeVec(bw, k)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteBandsFile writes res into dir under BandsFilename, creating dir when
// needed, and returns the file path.
func WriteBandsFile(dir, path string, res *bandstructure.Result, withKPoints bool) (string, error) {
	if res == nil || res.Len() == 0 {
		return "", ErrNoData
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	name := filepath.Join(dir, BandsFilename(res.Material, path, res.Bands()))
	err := writeFile(name, func(w io.Writer) error { return writeRows(w, res, withKPoints) })

	return name, err
}

// WriteKPointsFile writes pts into dir under KPointsFilename, creating dir
// when needed, and returns the file path.
func WriteKPointsFile(dir, material, path string, pts []r3.Vec) (string, error) {
	if len(pts) == 0 {
		return "", ErrNoData
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	name := filepath.Join(dir, KPointsFilename(material, path))
	err := writeFile(name, func(w io.Writer) error { return WriteKPoints(w, pts) })

	return name, err
}

func writeRows(w io.Writer, res *bandstructure.Result, withK bool) error {
	if res == nil || res.Len() == 0 {
		return ErrNoData
	}
	bw := bufio.NewWriter(w)
	for i, row := range res.Energies {
		if withK {
			writeVec(bw, res.KPoints[i])
			bw.WriteByte(' ')
		}
		for j, e := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(ftoa(e))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeVec(bw *bufio.Writer, k r3.Vec) {
	bw.WriteString(ftoa(k.X))
	bw.WriteByte(' ')
	bw.WriteString(ftoa(k.Y))
	bw.WriteByte(' ')
	bw.WriteString(ftoa(k.Z))
}

// writeFile creates name and runs fn on it, reporting the first error of
// fn or Close.
func writeFile(name string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
