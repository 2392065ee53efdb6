package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/maintdispatch/core/metrics"
)

// PromSink records dispatch outcomes in Prometheus metrics.
type PromSink struct {
	attempts      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	notifications *prometheus.CounterVec
}

// NewPromSink registers dispatch metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_attempts_total",
		Help: "Total number of dispatch attempts by terminal outcome",
	}, []string{"machine_type", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatch_attempt_duration_seconds",
		Help:    "End-to-end duration of a dispatch attempt",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_notifications_total",
		Help: "Alert delivery attempts by result",
	}, []string{"delivered"})

	for i, c := range []prometheus.Collector{attempts, duration, notifications} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch i {
			case 0:
				attempts = are.ExistingCollector.(*prometheus.CounterVec)
			case 1:
				duration = are.ExistingCollector.(*prometheus.HistogramVec)
			case 2:
				notifications = are.ExistingCollector.(*prometheus.CounterVec)
			}
		}
	}
	return &PromSink{attempts: attempts, duration: duration, notifications: notifications}, nil
}

// RecordAttempt increments the outcome counter and observes the duration.
func (s *PromSink) RecordAttempt(rec coremetrics.AttemptRecord) error {
	s.attempts.WithLabelValues(rec.MachineType, rec.Status).Inc()
	s.duration.WithLabelValues(rec.Status).Observe(rec.Duration.Seconds())
	return nil
}

// RecordNotification counts alert delivery results.
func (s *PromSink) RecordNotification(machineID string, delivered bool) error {
	s.notifications.WithLabelValues(strconv.FormatBool(delivered)).Inc()
	return nil
}
