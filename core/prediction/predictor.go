package prediction

import "github.com/kilianp07/maintdispatch/core/model"

// Predictor decides whether a machine needs maintenance from its current
// sensor reading. Implementations must be deterministic for identical input
// and keep no state between calls.
type Predictor interface {
	// Predict returns true if maintenance is needed. The features are read
	// in the fixed order temperature, vibration, pressure.
	Predict(reading model.SensorReading) (bool, error)
}
