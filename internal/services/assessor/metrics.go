package assessor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the assessor's Prometheus instruments.
type Metrics struct {
	AssessedTotal *prometheus.CounterVec
	InvalidTotal  prometheus.Counter
	Duration      prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AssessedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "soilfert_samples_assessed_total",
			Help: "Samples assessed, partitioned by fertility class.",
		}, []string{"class"}),
		InvalidTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "soilfert_samples_invalid_total",
			Help: "Samples rejected for invalid measurements.",
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "soilfert_assessment_duration_seconds",
			Help:    "Wall time of a single assessment.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
}
