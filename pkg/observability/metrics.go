package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks translation activity for a card builder instance.
type Metrics struct {
	batchesTotal     *prometheus.CounterVec
	batchDuration    prometheus.Histogram
	fieldsTranslated prometheus.Counter
}

// NewMetrics creates and registers the translation metrics on reg.
// Passing prometheus.DefaultRegisterer wires them into the default exposition.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		batchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adaptivecard",
			Subsystem: "translate",
			Name:      "batches_total",
			Help:      "Translation batches dispatched, by outcome.",
		}, []string{"status"}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adaptivecard",
			Subsystem: "translate",
			Name:      "batch_duration_seconds",
			Help:      "Wall-clock duration of a single translation batch request.",
			Buckets:   prometheus.DefBuckets,
		}),
		fieldsTranslated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adaptivecard",
			Subsystem: "translate",
			Name:      "fields_translated_total",
			Help:      "Card fields successfully overwritten with translated text.",
		}),
	}
	reg.MustRegister(m.batchesTotal, m.batchDuration, m.fieldsTranslated)
	return m
}

// ObserveBatch records the outcome and duration of one batch request.
func (m *Metrics) ObserveBatch(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.batchesTotal.WithLabelValues(status).Inc()
	m.batchDuration.Observe(elapsed.Seconds())
}

// AddFieldsTranslated records n successful field write-backs.
func (m *Metrics) AddFieldsTranslated(n int) {
	if m == nil {
		return
	}
	m.fieldsTranslated.Add(float64(n))
}
