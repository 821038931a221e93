package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "a2t"

// File outcomes recorded by the batch processor.
const (
	OutcomeTranscribed = "transcribed"
	OutcomeRejected    = "rejected"
	OutcomeUnreadable  = "unreadable"
	OutcomeFailed      = "failed"
)

// Metrics groups the collectors for batch processing. A nil *Metrics is a no-op.
type Metrics struct {
	files         *prometheus.CounterVec
	advisories    prometheus.Counter
	transcription prometheus.Histogram
	exports       *prometheus.CounterVec
	batches       prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Uploaded files by processing outcome.",
		}, []string{"outcome"}),
		advisories: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_type_advisories_total",
			Help:      "Accepted files whose declared content type was outside the allow-list.",
		}),
		transcription: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcription_duration_seconds",
			Help:      "Time spent in the speech-to-text model per file.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export attempts by format and result.",
		}, []string{"format", "result"}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Processed batches.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.files, m.advisories, m.transcription, m.exports, m.batches)
	}
	return m
}

func (m *Metrics) FileProcessed(outcome string) {
	if m == nil {
		return
	}
	m.files.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ContentTypeAdvisory() {
	if m == nil {
		return
	}
	m.advisories.Inc()
}

func (m *Metrics) ObserveTranscription(d time.Duration) {
	if m == nil {
		return
	}
	m.transcription.Observe(d.Seconds())
}

func (m *Metrics) Export(format string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(format, result).Inc()
}

func (m *Metrics) BatchProcessed() {
	if m == nil {
		return
	}
	m.batches.Inc()
}
