package export

import "errors"

var (
	// ErrLengthMismatch indicates CSV columns (or header and columns) of different lengths.
	ErrLengthMismatch = errors.New("export: column length mismatch")

	// ErrNoData indicates nothing to export.
	ErrNoData = errors.New("export: no data")

	// ErrRunNotFound indicates an archive run id that does not exist.
	ErrRunNotFound = errors.New("export: run not found")
)
