package dispatch

import (
	"fmt"
	"time"

	"github.com/kilianp07/maintdispatch/core/classify"
	"github.com/kilianp07/maintdispatch/core/model"
	"github.com/kilianp07/maintdispatch/core/notify"
)

// Status is the terminal outcome of a dispatch attempt. All statuses are
// expected business outcomes, never error conditions.
type Status int

const (
	StatusHealthy Status = iota
	StatusSuccess
	StatusPartOutOfStock
	StatusNoPart
	StatusNoTechnician
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusSuccess:
		return "success"
	case StatusPartOutOfStock:
		return "failure_part_out_of_stock"
	case StatusNoPart:
		return "failure_no_part"
	case StatusNoTechnician:
		return "failure_no_technician"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the structured record of one dispatch attempt. It is serializable
// so any transport can wrap it without re-deriving logic.
type Result struct {
	AttemptID string           `json:"attempt_id"`
	MachineID string           `json:"machine_id"`
	Status    Status           `json:"status"`
	Verdict   classify.Verdict `json:"verdict"`

	Request *model.DispatchRequest `json:"request,omitempty"`

	PartID         string `json:"part_id,omitempty"`
	PartName       string `json:"part_name,omitempty"`
	PartLocation   string `json:"part_location,omitempty"`
	TechnicianID   string `json:"technician_id,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`

	// Reason carries the single failure reason surfaced to the end user.
	Reason string `json:"reason,omitempty"`

	// Notification is set only when an alert send was attempted, which
	// happens on StatusSuccess alone.
	Notification *notify.Delivery `json:"notification,omitempty"`
	Contact      string           `json:"contact,omitempty"`

	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}

// Failure reasons surfaced to the end user.
const (
	ReasonPartOutOfStock = "Part out of stock"
	ReasonNoPart         = "No matching part found"
	ReasonNoTechnician   = "No available technician found"
)

// Summary returns a one-sentence human-readable account of the attempt,
// formatted from the already-computed result.
func (r Result) Summary() string {
	switch r.Status {
	case StatusHealthy:
		return fmt.Sprintf("Machine %s is healthy; no maintenance required.", r.MachineID)
	case StatusSuccess:
		s := fmt.Sprintf("Maintenance scheduled for %s: part %s, technician %s.", r.MachineID, r.PartName, r.TechnicianName)
		if r.Notification != nil && !r.Notification.Delivered {
			s += " Alert delivery failed: " + r.Notification.Error
		}
		return s
	case StatusPartOutOfStock:
		return fmt.Sprintf("Maintenance for %s blocked: %s is out of stock.", r.MachineID, r.PartName)
	case StatusNoPart:
		return fmt.Sprintf("Maintenance for %s blocked: no matching part in the catalog.", r.MachineID)
	case StatusNoTechnician:
		return fmt.Sprintf("Maintenance for %s blocked: part %s reserved but no technician is available.", r.MachineID, r.PartName)
	default:
		return fmt.Sprintf("Dispatch attempt for %s ended in unknown state.", r.MachineID)
	}
}
