package model

import "time"

// MachineStatus describes the operational state of a machine.
type MachineStatus int

const (
	StatusOperational MachineStatus = iota
	StatusMaintenance
	StatusOffline
)

// String returns a human-readable representation of the status.
func (s MachineStatus) String() string {
	switch s {
	case StatusOperational:
		return "operational"
	case StatusMaintenance:
		return "maintenance"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so the status serializes as
// its name in JSON payloads.
func (s MachineStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseMachineStatus converts a status name into a MachineStatus. Unknown
// names map to StatusOffline.
func ParseMachineStatus(s string) MachineStatus {
	switch s {
	case "operational":
		return StatusOperational
	case "maintenance":
		return StatusMaintenance
	default:
		return StatusOffline
	}
}

// Machine represents a monitored production asset. Identity is the ID; the
// struct is treated as immutable within a dispatch attempt.
type Machine struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Type            string        `json:"type"`
	Status          MachineStatus `json:"status"`
	LastMaintenance time.Time     `json:"last_maintenance"`
	NextMaintenance time.Time     `json:"next_maintenance"`
}
