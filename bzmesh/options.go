package bzmesh

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/epmbands/telemetry"
)

// DefaultBins is the number of energy bins of a DOS histogram.
const DefaultBins = 250

// Option configures ComputeDOS.
type Option func(*Options)

// Options holds DOS settings.
type Options struct {
	Bins    int
	Workers int
	// Lo and Hi fix the energy window when Hi > Lo; otherwise the field range is used.
	Lo, Hi float64
	// UnitNormalization divides the density by the mesh volume so it integrates to 1.
	UnitNormalization bool
	Metrics           *telemetry.Metrics
	Logger            *zap.Logger
}

// DefaultOptions returns 250 bins, one worker and the automatic window.
func DefaultOptions() Options {
	return Options{Bins: DefaultBins, Workers: 1, Logger: zap.NewNop()}
}

// WithBins sets the number of energy bins.
func WithBins(n int) Option { return func(o *Options) { o.Bins = n } }

// WithWorkers sets the number of goroutines.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithRange fixes the energy window to [lo, hi].
func WithRange(lo, hi float64) Option {
	return func(o *Options) { o.Lo, o.Hi = lo, hi }
}

// WithUnitNormalization makes every histogram integrate to 1.
func WithUnitNormalization() Option { return func(o *Options) { o.UnitNormalization = true } }

// WithMetrics sets the metrics sink.
func WithMetrics(m *telemetry.Metrics) Option { return func(o *Options) { o.Metrics = m } }

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
