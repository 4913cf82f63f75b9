package basis

// Truncation decides what happens to the shell that crosses a vector cap.
type Truncation int

const (
	// CompleteShell keeps the crossing shell whole, so the basis may exceed the cap.
	CompleteShell Truncation = iota
	// DropPartialShell discards the crossing shell, so the basis stays under the cap.
	DropPartialShell
)

// String returns the policy name used in configuration files.
func (t Truncation) String() string {
	if t == DropPartialShell {
		return "drop"
	}

	return "complete"
}

// Option configures Generate.
type Option func(*Options)

// Options holds the effective generation policy.
type Options struct {
	// MaxVectors caps the basis size; 0 disables the cap.
	MaxVectors int
	// Truncation applies when MaxVectors cuts through a shell.
	Truncation Truncation
}

// DefaultOptions returns no cap and CompleteShell truncation.
func DefaultOptions() Options {
	return Options{MaxVectors: 0, Truncation: CompleteShell}
}

// WithMaxVectors caps the number of plane waves. Values ≤ 0 disable the cap.
func WithMaxVectors(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxVectors = n
	}
}

// WithTruncation selects the policy applied to a shell crossing MaxVectors.
func WithTruncation(t Truncation) Option {
	return func(o *Options) { o.Truncation = t }
}
