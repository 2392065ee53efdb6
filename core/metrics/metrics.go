// Package metrics defines the observability contracts for dispatch attempts.
// Sinks record terminal outcomes; implementations live under infra/metrics.
package metrics

import "time"

// AttemptRecord captures one completed dispatch attempt.
type AttemptRecord struct {
	AttemptID    string
	MachineID    string
	MachineType  string
	Status       string
	PartID       string
	TechnicianID string
	Notified     bool
	Duration     time.Duration
	Time         time.Time
}

// OutcomeSink records dispatch attempt outcomes for observability purposes.
type OutcomeSink interface {
	RecordAttempt(rec AttemptRecord) error
}

// NotificationRecorder records alert delivery results. Sinks may implement
// it in addition to OutcomeSink.
type NotificationRecorder interface {
	RecordNotification(machineID string, delivered bool) error
}
