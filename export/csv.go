package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/epmbands/bzmesh"
)

// PadColumn is the trailing placeholder column of every CSV table.
const PadColumn = "pad"

// WriteColumnsCSV writes header plus PadColumn, then one row per index of
// the equally long columns, each row ending with an empty placeholder.
// Errors: ErrNoData, ErrLengthMismatch (checked before path is created).
func WriteColumnsCSV(path string, header []string, columns [][]float64) error {
	if err := checkColumns(header, columns); err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error { return encodeColumns(w, header, columns) })
}

// WriteDOSCSV writes energy_band_i,dos_band_i column pairs, one pair per
// histogram, in the given order.
func WriteDOSCSV(path string, hists []*bzmesh.Histogram) error {
	header, columns := dosColumns(hists)

	return WriteColumnsCSV(path, header, columns)
}

func dosColumns(hists []*bzmesh.Histogram) ([]string, [][]float64) {
	header := make([]string, 0, 2*len(hists))
	columns := make([][]float64, 0, 2*len(hists))
	for _, h := range hists {
		name := h.Field
		if h.Band >= 0 {
			name = bzmesh.BandFieldName(h.Band)
		}
		header = append(header, "energy_"+name, "dos_"+name)
		columns = append(columns, h.Energies, h.Density)
	}

	return header, columns
}

func checkColumns(header []string, columns [][]float64) error {
	if len(columns) == 0 {
		return ErrNoData
	}
	if len(header) != len(columns) {
		return fmt.Errorf("%d header names for %d columns: %w", len(header), len(columns), ErrLengthMismatch)
	}
	n := len(columns[0])
	for i, c := range columns {
		if len(c) != n {
			return fmt.Errorf("column %q has %d rows, want %d: %w", header[i], len(c), n, ErrLengthMismatch)
		}
	}

	return nil
}

func encodeColumns(w io.Writer, header []string, columns [][]float64) error {
	cw := csv.NewWriter(w)
	record := make([]string, len(columns)+1)
	copy(record, header)
	record[len(columns)] = PadColumn
	if err := cw.Write(record); err != nil {
		return err
	}
	record[len(columns)] = ""
	for i := range columns[0] {
		for j, c := range columns {
			record[j] = ftoa(c[i])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
