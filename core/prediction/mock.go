package prediction

import "github.com/kilianp07/maintdispatch/core/model"

// MockPredictor returns configured verdicts per machine ID. Machines without
// an entry default to no maintenance needed.
type MockPredictor struct {
	Verdicts map[string]bool
	Err      error
}

// Predict returns the configured verdict for the reading's machine.
func (m MockPredictor) Predict(reading model.SensorReading) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if m.Verdicts == nil {
		return false, nil
	}
	return m.Verdicts[reading.MachineID], nil
}
