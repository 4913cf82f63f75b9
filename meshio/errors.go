package meshio

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates malformed MSH content.
	ErrFormat = errors.New("meshio: malformed msh file")

	// ErrUnsupported indicates a valid file this adapter does not handle (binary or MSH 4).
	ErrUnsupported = errors.New("meshio: unsupported msh variant")
)

func formatErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrFormat)
}
