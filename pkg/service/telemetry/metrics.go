// Package telemetry sets up Prometheus metrics for the prediction pipeline.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	PredictionCounter *prometheus.CounterVec
	RejectionCounter  prometheus.Counter
}

// NewMetrics initializes and registers all Prometheus metrics used by the
// service. Register errors surface duplicate registration bugs early.
func NewMetrics() (*Metrics, error) {
	metrics := &Metrics{
		PredictionCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "breedsense_predictions_total",
			Help: "Count of successful breed predictions partitioned by breed.",
		}, []string{"breed"}),
		RejectionCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "breedsense_rejected_uploads_total",
			Help: "Count of uploads rejected by the cow-likeness heuristic.",
		}),
	}

	if err := prometheus.Register(metrics.PredictionCounter); err != nil {
		return nil, err
	}
	if err := prometheus.Register(metrics.RejectionCounter); err != nil {
		return nil, err
	}

	return metrics, nil
}

// Handler returns the Prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncrementPrediction increments the prediction counter for a breed
func (m *Metrics) IncrementPrediction(breed string) {
	m.PredictionCounter.WithLabelValues(breed).Inc()
}

// IncrementRejection increments the rejected upload counter
func (m *Metrics) IncrementRejection() {
	m.RejectionCounter.Inc()
}
