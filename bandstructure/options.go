package bandstructure

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/epmbands/diag"
	"github.com/katalvlaran/epmbands/telemetry"
)

// Option configures Compute and Run.
type Option func(*Options)

// Options holds orchestration settings.
type Options struct {
	// Workers is the number of goroutines; values ≤ 1 run sequentially.
	Workers int
	// Solver builds one eigensolver per worker.
	Solver diag.Factory
	// Logger receives per-worker debug lines and a run summary.
	Logger *zap.Logger
	// Metrics records k-point throughput; nil disables it.
	Metrics *telemetry.Metrics
}

// DefaultOptions returns a sequential LAPACK run with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Solver:  func() diag.Solver { return diag.NewLAPACK() },
		Logger:  zap.NewNop(),
	}
}

// WithWorkers sets the worker count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSolver sets the solver factory; nil keeps the default.
func WithSolver(f diag.Factory) Option {
	return func(o *Options) {
		if f != nil {
			o.Solver = f
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
