package hamiltonian

// Option configures a Builder.
type Option func(*Options)

// Options holds Builder settings.
type Options struct {
	// SpinOrbit doubles the basis and adds the spin-orbit blocks.
	SpinOrbit bool
}

// DefaultOptions returns a spin-free configuration.
func DefaultOptions() Options { return Options{SpinOrbit: false} }

// WithSpinOrbit enables or disables spin-orbit coupling.
func WithSpinOrbit(on bool) Option {
	return func(o *Options) { o.SpinOrbit = on }
}
