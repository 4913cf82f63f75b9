package bzmesh

import "errors"

var (
	// ErrEmptyMesh indicates a mesh without nodes or tetrahedra.
	ErrEmptyMesh = errors.New("bzmesh: mesh has no nodes or tetrahedra")

	// ErrBadTetrahedron indicates an element with out-of-range or repeated node indices.
	ErrBadTetrahedron = errors.New("bzmesh: invalid tetrahedron")

	// ErrMissingField indicates a field name absent from the mesh.
	ErrMissingField = errors.New("bzmesh: missing field")

	// ErrFieldLength indicates a field whose length differs from the node count.
	ErrFieldLength = errors.New("bzmesh: field length differs from node count")

	// ErrNonFinite indicates a NaN or infinite field value.
	ErrNonFinite = errors.New("bzmesh: non-finite field value")

	// ErrInvalidBins indicates a non-positive bin count or an empty energy window.
	ErrInvalidBins = errors.New("bzmesh: invalid energy bins")

	// ErrVolumeMismatch indicates a mesh volume outside the expected tolerance.
	ErrVolumeMismatch = errors.New("bzmesh: mesh volume mismatch")
)
