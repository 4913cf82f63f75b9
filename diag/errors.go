package diag

import "errors"

var (
	// ErrNotConverged indicates the eigensolver failed to converge.
	ErrNotConverged = errors.New("diag: eigensolver did not converge")

	// ErrInvalidBandCount indicates a requested band count outside [1, dim].
	ErrInvalidBandCount = errors.New("diag: band count out of range")

	// ErrUnknownSolver indicates a solver name ByName does not know.
	ErrUnknownSolver = errors.New("diag: unknown solver")
)
