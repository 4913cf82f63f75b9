package kpath

import "errors"

var (
	// ErrUnknownPoint indicates a label missing from the symmetry-point table.
	ErrUnknownPoint = errors.New("kpath: unknown symmetry point")

	// ErrTooFewPoints indicates fewer than two points per segment.
	ErrTooFewPoints = errors.New("kpath: need at least 2 points per segment")

	// ErrPathTooShort indicates fewer than two labels.
	ErrPathTooShort = errors.New("kpath: a path needs at least 2 labels")
)
