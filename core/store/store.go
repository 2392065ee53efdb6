// Package store defines the read-only data access contracts for the dispatch
// pipeline. Implementations provide a consistent snapshot of the plant:
// machine metadata, current sensor readings, the spare part inventory and the
// technician roster.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/kilianp07/maintdispatch/core/model"
)

// FleetStore exposes the plant data the dispatch pipeline reads. All methods
// are snapshot reads; the core never writes back.
type FleetStore interface {
	// GetMachineInfo returns the machine metadata or a *NotFoundError.
	GetMachineInfo(ctx context.Context, machineID string) (model.Machine, error)
	// GetMachineReadings returns the current sensor reading for the machine
	// or a *NotFoundError.
	GetMachineReadings(ctx context.Context, machineID string) (model.SensorReading, error)
	// GetInventory returns the full spare part catalog.
	GetInventory(ctx context.Context) ([]model.Part, error)
	// GetTechnicians returns the full staff roster.
	GetTechnicians(ctx context.Context) ([]model.Technician, error)
}

// ContactResolver maps a machine to the address alerts for it should reach.
type ContactResolver interface {
	ContactFor(machine model.Machine) string
}

// NotFoundError reports an unknown machine ID. It halts the pipeline and is
// surfaced to the caller without retry.
type NotFoundError struct {
	MachineID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("machine %s not found", e.MachineID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
