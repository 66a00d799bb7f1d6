package observe

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/safecall/pkg/rop/core"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeCancel  = "cancel"
)

// Collector counts wrapped calls by outcome and records their duration.
type Collector struct {
	outcomes *prometheus.CounterVec
	panics   prometheus.Counter
	duration *prometheus.HistogramVec
}

var _ core.Observer = (*Collector)(nil)

func NewCollector(namespace string) *Collector {
	return &Collector{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outcomes_total",
				Help:      "Wrapped operation outcomes by kind",
			},
			[]string{"outcome"},
		),
		panics: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panics_total",
				Help:      "Wrapped operations that panicked",
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "call_duration_seconds",
				Help:      "Duration of wrapped operations",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"outcome"},
		),
	}
}

// Register adds all metrics to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{c.outcomes, c.panics, c.duration} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) Observe(_ context.Context, report core.Report) {
	kind := outcomeKind(report)

	c.outcomes.WithLabelValues(kind).Inc()
	c.duration.WithLabelValues(kind).Observe(report.Duration.Seconds())
	if report.Panicked {
		c.panics.Inc()
	}
}

func outcomeKind(report core.Report) string {
	switch {
	case report.Success:
		return OutcomeSuccess
	case report.Cancelled:
		return OutcomeCancel
	default:
		return OutcomeError
	}
}
