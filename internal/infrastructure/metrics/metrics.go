package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the classification service
type Metrics struct {
	JobsSubmitted    prometheus.Counter
	JobsFinished     *prometheus.CounterVec
	TitlesClassified prometheus.Counter
	ClassifyDuration prometheus.Histogram
}

// New registers the service instruments with the given registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		JobsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "classification_jobs_submitted_total",
			Help: "Number of batch jobs accepted for processing.",
		}),
		JobsFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "classification_jobs_finished_total",
			Help: "Number of batch jobs that reached a terminal state.",
		}, []string{"status"}),
		TitlesClassified: factory.NewCounter(prometheus.CounterOpts{
			Name: "classification_titles_total",
			Help: "Number of individual titles classified across all jobs.",
		}),
		ClassifyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "classification_model_call_duration_seconds",
			Help:    "Latency of calls to the model inference service.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}
}

// RegisterJobGauges exposes live job store counts as gauges. The store is
// polled at scrape time through the provided callback.
func RegisterJobGauges(reg prometheus.Registerer, stats func() (active, total int)) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "classification_jobs_active",
		Help: "Jobs currently queued or processing.",
	}, func() float64 {
		active, _ := stats()
		return float64(active)
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "classification_jobs_retained",
		Help: "Jobs currently held in the store, including terminal ones awaiting expiry.",
	}, func() float64 {
		_, total := stats()
		return float64(total)
	}))
}
