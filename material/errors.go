package material

import "errors"

var (
	// ErrUnknownMaterial indicates a symbol that is not in the registry.
	ErrUnknownMaterial = errors.New("material: unknown material")

	// ErrDuplicateMaterial indicates two materials sharing a symbol.
	ErrDuplicateMaterial = errors.New("material: duplicate symbol")

	// ErrInvalidMaterial indicates a descriptor that fails validation.
	ErrInvalidMaterial = errors.New("material: invalid descriptor")
)
