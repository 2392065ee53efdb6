package store

import (
	"time"

	"github.com/kilianp07/maintdispatch/core/model"
)

func mustTime(v string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", v)
	if err != nil {
		panic(err)
	}
	return t
}

// NewSampleStore returns a store seeded with the reference plant dataset:
// seven machines with current readings, eight catalog parts (the Primary Gear
// Set intentionally out of stock) and five staff members.
func NewSampleStore() *MemoryStore {
	s := NewMemoryStore()

	machines := []struct {
		m model.Machine
		r model.SensorReading
	}{
		{
			model.Machine{ID: "PUMP-A-01", Name: "Pump System A1", Type: "Pump", Status: model.StatusOperational,
				LastMaintenance: mustTime("2025-07-15T08:00:00"), NextMaintenance: mustTime("2025-08-15T08:00:00")},
			model.SensorReading{Temperature: 70.5, Vibration: 1.48, Pressure: 301.5, Timestamp: mustTime("2025-08-02T08:00:00")},
		},
		{
			model.Machine{ID: "MOTOR-B-02", Name: "Electric Motor B2", Type: "Motor", Status: model.StatusOperational,
				LastMaintenance: mustTime("2025-07-10T14:00:00"), NextMaintenance: mustTime("2025-08-10T14:00:00")},
			model.SensorReading{Temperature: 92.3, Vibration: 8.7, Pressure: 145.2, Timestamp: mustTime("2025-08-02T08:10:00")},
		},
		{
			model.Machine{ID: "TURBINE-C-01", Name: "Turbine C1", Type: "Turbine", Status: model.StatusOperational,
				LastMaintenance: mustTime("2025-07-20T09:30:00"), NextMaintenance: mustTime("2025-08-20T09:30:00")},
			model.SensorReading{Temperature: 152.5, Vibration: 0.83, Pressure: 501.4, Timestamp: mustTime("2025-08-02T08:10:00")},
		},
		{
			model.Machine{ID: "COMPRESSOR-D-04", Name: "Air Compressor D4", Type: "Compressor", Status: model.StatusOperational,
				LastMaintenance: mustTime("2025-07-05T10:00:00"), NextMaintenance: mustTime("2025-08-05T10:00:00")},
			model.SensorReading{Temperature: 85.4, Vibration: 3.15, Pressure: 211.0, Timestamp: mustTime("2025-08-02T08:05:00")},
		},
		{
			model.Machine{ID: "GEARBOX-F-03", Name: "Gearbox System F3", Type: "Gearbox", Status: model.StatusOperational,
				LastMaintenance: mustTime("2025-07-12T11:00:00"), NextMaintenance: mustTime("2025-08-12T11:00:00")},
			model.SensorReading{Temperature: 96.1, Vibration: 8.1, Pressure: 174.5, Timestamp: mustTime("2025-08-02T08:15:00")},
		},
		{
			model.Machine{ID: "HVAC-G-11", Name: "HVAC System G11", Type: "HVAC", Status: model.StatusOperational,
				LastMaintenance: mustTime("2025-07-18T08:30:00"), NextMaintenance: mustTime("2025-08-18T08:30:00")},
			model.SensorReading{Temperature: 55.3, Vibration: 1.11, Pressure: 125.6, Timestamp: mustTime("2025-08-02T08:15:00")},
		},
		{
			model.Machine{ID: "ROBOT-J-15", Name: "Robotic Arm J15", Type: "Robot", Status: model.StatusMaintenance,
				LastMaintenance: mustTime("2025-08-01T08:00:00"), NextMaintenance: mustTime("2025-09-01T08:00:00")},
			model.SensorReading{Temperature: 65.8, Vibration: 0.95, Pressure: 100.3, Timestamp: mustTime("2025-08-02T08:20:00")},
		},
	}
	for _, e := range machines {
		s.AddMachine(e.m, e.r)
	}

	s.SetInventory([]model.Part{
		{ID: "part-brg-001", Name: "Standard Bearing Assembly",
			Keywords: []string{"bearing", "grinding", "vibration", "noise", "high vibration"},
			Quantity: 12, Location: "Warehouse A, Bin 3",
			ApplicableMachineTypes: []string{"Motor", "Pump", "Gearbox"}},
		{ID: "part-pmp-seal-004", Name: "Seal Kit",
			Keywords: []string{"seal", "leaking", "leak", "fluid loss"},
			Quantity: 25, Location: "Warehouse C, Bin 1",
			ApplicableMachineTypes: []string{"Pump", "Gearbox"}},
		{ID: "part-gr-set-007", Name: "Primary Gear Set",
			Keywords: []string{"gear", "slipping", "jammed", "broken tooth", "grinding"},
			Quantity: 0, Location: "Warehouse B, Bin 8",
			ApplicableMachineTypes: []string{"Gearbox"}},
		{ID: "part-cmp-flt-012", Name: "Compressor Air Filter",
			Keywords: []string{"filter", "clogged", "overheating", "temperature", "pressure drop"},
			Quantity: 40, Location: "Warehouse C, Bin 2",
			ApplicableMachineTypes: []string{"Compressor"}},
		{ID: "part-trb-bld-003", Name: "High-Stress Turbine Blade",
			Keywords: []string{"blade", "turbine", "fatigue", "imbalance", "catastrophic failure"},
			Quantity: 8, Location: "Warehouse B, Secure Cage",
			ApplicableMachineTypes: []string{"Turbine"}},
		{ID: "part-hvc-flt-001", Name: "Industrial HVAC Filter Cartridge",
			Keywords: []string{"hvac", "filter", "air flow", "dusty", "clogged"},
			Quantity: 150, Location: "General Storage, Shelf D",
			ApplicableMachineTypes: []string{"HVAC"}},
		{ID: "part-rbt-srv-009", Name: "Axis 4 Servo Motor",
			Keywords: []string{"robot", "servo", "motor", "joint", "axis", "not moving", "fault"},
			Quantity: 6, Location: "Electronics Lab, Shelf 3",
			ApplicableMachineTypes: []string{"Robot"}},
		{ID: "part-lub-001", Name: "High-Temp Synthetic Lubricant",
			Keywords: []string{"lubricant", "oil", "grease", "overheating", "temperature", "friction"},
			Quantity: 200, Location: "Chemical Storage, Bay 2",
			ApplicableMachineTypes: []string{"Motor", "Pump", "Gearbox", "Compressor"}},
	})

	s.SetTechnicians([]model.Technician{
		{ID: "tech-001", Name: "Alice Johnson", Role: "Maintenance Technician",
			Skills: []string{"Pump", "Motor", "Compressor"}, Availability: model.Available},
		{ID: "tech-002", Name: "Bob Smith", Role: "Maintenance Technician",
			Skills: []string{"Robotics", "HVAC"}, Availability: model.Busy, CurrentAssignment: "ROBOT-J-15"},
		{ID: "tech-003", Name: "Carol Davis", Role: "Senior Maintenance Engineer",
			Skills: []string{"Turbine", "Gearbox", "Motor"}, Availability: model.Available},
		{ID: "op-001", Name: "Dave Wilson", Role: "Machine Operator",
			Skills: []string{"Pump", "Motor"}, Availability: model.Busy, CurrentAssignment: "PUMP-A-01"},
		{ID: "op-002", Name: "Eve Brown", Role: "Machine Operator",
			Skills: []string{"Gearbox", "Compressor"}, Availability: model.Busy, CurrentAssignment: "GEARBOX-F-03"},
	})

	s.SetContacts(map[string]string{
		"Motor":   "motor-maintenance@plant.local",
		"Pump":    "pump-maintenance@plant.local",
		"Turbine": "turbine-maintenance@plant.local",
	}, "maintenance@plant.local")

	return s
}
