// Package events defines the typed events published on the internal bus
// during a dispatch attempt. Subscribers (exporters, debug tooling) observe
// the pipeline without participating in the decision.
package events

import (
	"github.com/kilianp07/maintdispatch/core/classify"
	"github.com/kilianp07/maintdispatch/core/model"
)

// VerdictEvent is published after classification completes.
type VerdictEvent struct {
	AttemptID string
	MachineID string
	Verdict   classify.Verdict
}

// PartMatchEvent is published after the catalog search.
type PartMatchEvent struct {
	AttemptID string
	MachineID string
	State     string
	PartID    string
}

// TechnicianMatchEvent is published after the roster search.
type TechnicianMatchEvent struct {
	AttemptID    string
	MachineID    string
	State        string
	TechnicianID string
}

// OutcomeEvent is published once the attempt reaches a terminal outcome.
type OutcomeEvent struct {
	AttemptID string
	MachineID string
	Status    string
	Request   model.DispatchRequest
}

// NotificationEvent reports the alert delivery result for a successful
// dispatch.
type NotificationEvent struct {
	AttemptID string
	MachineID string
	Contact   string
	Delivered bool
	Err       error
}
