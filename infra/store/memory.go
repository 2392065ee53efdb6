// Package store provides an in-memory FleetStore seeded with the reference
// plant dataset. Dispatch attempts read a consistent snapshot; nothing in the
// core writes back, so no locking beyond copy-on-read is needed.
package store

import (
	"context"
	"sort"

	"github.com/kilianp07/maintdispatch/core/model"
	corestore "github.com/kilianp07/maintdispatch/core/store"
)

// MemoryStore holds the plant dataset in memory.
type MemoryStore struct {
	machines    map[string]model.Machine
	readings    map[string]model.SensorReading
	inventory   []model.Part
	technicians []model.Technician
	contacts    map[string]string
	defaultTo   string
}

// NewMemoryStore returns an empty store. Use Seed helpers or NewSampleStore
// for the reference dataset.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		machines: make(map[string]model.Machine),
		readings: make(map[string]model.SensorReading),
		contacts: make(map[string]string),
	}
}

// AddMachine registers a machine and its current reading.
func (s *MemoryStore) AddMachine(m model.Machine, r model.SensorReading) {
	s.machines[m.ID] = m
	r.MachineID = m.ID
	s.readings[m.ID] = r
}

// SetInventory replaces the spare part catalog.
func (s *MemoryStore) SetInventory(parts []model.Part) {
	s.inventory = append([]model.Part(nil), parts...)
}

// SetTechnicians replaces the staff roster.
func (s *MemoryStore) SetTechnicians(techs []model.Technician) {
	s.technicians = append([]model.Technician(nil), techs...)
}

// SetContacts configures the alert contact per machine type plus a default.
func (s *MemoryStore) SetContacts(byType map[string]string, def string) {
	s.contacts = make(map[string]string, len(byType))
	for k, v := range byType {
		s.contacts[k] = v
	}
	s.defaultTo = def
}

// GetMachineInfo implements store.FleetStore.
func (s *MemoryStore) GetMachineInfo(ctx context.Context, machineID string) (model.Machine, error) {
	m, ok := s.machines[machineID]
	if !ok {
		return model.Machine{}, &corestore.NotFoundError{MachineID: machineID}
	}
	return m, nil
}

// GetMachineReadings implements store.FleetStore.
func (s *MemoryStore) GetMachineReadings(ctx context.Context, machineID string) (model.SensorReading, error) {
	r, ok := s.readings[machineID]
	if !ok {
		return model.SensorReading{}, &corestore.NotFoundError{MachineID: machineID}
	}
	return r, nil
}

// GetInventory implements store.FleetStore.
func (s *MemoryStore) GetInventory(ctx context.Context) ([]model.Part, error) {
	return append([]model.Part(nil), s.inventory...), nil
}

// GetTechnicians implements store.FleetStore.
func (s *MemoryStore) GetTechnicians(ctx context.Context) ([]model.Technician, error) {
	return append([]model.Technician(nil), s.technicians...), nil
}

// ContactFor implements store.ContactResolver. Machine types without an
// explicit contact fall back to the default address.
func (s *MemoryStore) ContactFor(machine model.Machine) string {
	if c, ok := s.contacts[machine.Type]; ok {
		return c
	}
	return s.defaultTo
}

// Machines returns all machines sorted by ID, for listing surfaces.
func (s *MemoryStore) Machines() []model.Machine {
	out := make([]model.Machine, 0, len(s.machines))
	for _, m := range s.machines {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
