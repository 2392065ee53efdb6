package metrics

import (
	"errors"

	coremetrics "github.com/kilianp07/maintdispatch/core/metrics"
)

// MultiSink fans out records to several sinks. Errors are joined so a failing
// sink never hides the others.
type MultiSink struct {
	sinks []coremetrics.OutcomeSink
}

// NewMultiSink combines the given sinks.
func NewMultiSink(sinks ...coremetrics.OutcomeSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordAttempt implements coremetrics.OutcomeSink.
func (m *MultiSink) RecordAttempt(rec coremetrics.AttemptRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordAttempt(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordNotification implements coremetrics.NotificationRecorder for the
// sinks that support it.
func (m *MultiSink) RecordNotification(machineID string, delivered bool) error {
	var errs []error
	for _, s := range m.sinks {
		if nr, ok := s.(coremetrics.NotificationRecorder); ok {
			if err := nr.RecordNotification(machineID, delivered); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// NopSink discards all records.
type NopSink struct{}

// RecordAttempt implements coremetrics.OutcomeSink.
func (NopSink) RecordAttempt(coremetrics.AttemptRecord) error { return nil }
