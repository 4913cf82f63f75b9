// Package telemetry exposes Prometheus metrics for band-structure and DOS
// runs. A nil *Metrics is valid and records nothing, so library callers may
// skip metrics entirely.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors of one registry.
type Metrics struct {
	kpoints     *prometheus.CounterVec
	tetrahedra  prometheus.Counter
	diagSeconds prometheus.Histogram
	gap         *prometheus.GaugeVec
}

// NewMetrics registers the collectors on reg; a nil reg uses
// prometheus.DefaultRegisterer. Registering twice on the same registry panics,
// as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		kpoints: f.NewCounterVec(prometheus.CounterOpts{
			Name: "epm_kpoints_total",
			Help: "K-points diagonalized, by material.",
		}, []string{"material"}),
		tetrahedra: f.NewCounter(prometheus.CounterOpts{
			Name: "epm_tetrahedra_total",
			Help: "Tetrahedron contributions accumulated into DOS histograms.",
		}),
		diagSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "epm_diagonalization_seconds",
			Help:    "Time to build and diagonalize one Hamiltonian.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
		gap: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "epm_band_gap_ev",
			Help: "Band gap of the last adjusted run, by material.",
		}, []string{"material"}),
	}
}

// ObserveKPoint counts one diagonalized k-point and its duration.
func (m *Metrics) ObserveKPoint(material string, d time.Duration) {
	if m == nil {
		return
	}
	m.kpoints.WithLabelValues(material).Inc()
	m.diagSeconds.Observe(d.Seconds())
}

// AddTetrahedra counts n tetrahedron contributions.
func (m *Metrics) AddTetrahedra(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.tetrahedra.Add(float64(n))
}

// SetGap records the band gap in eV.
func (m *Metrics) SetGap(material string, ev float64) {
	if m == nil {
		return
	}
	m.gap.WithLabelValues(material).Set(ev)
}

// WriteTextfile writes every metric of g in the node-exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
