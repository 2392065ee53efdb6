package model

import "time"

// SensorReading is the current telemetry snapshot for a machine. One reading
// per machine is retained; history is an external-store concern.
type SensorReading struct {
	MachineID   string    `json:"machine_id"`
	Temperature float64   `json:"temperature"` // degrees Celsius
	Vibration   float64   `json:"vibration"`   // mm/s RMS
	Pressure    float64   `json:"pressure"`    // kPa
	Timestamp   time.Time `json:"timestamp"`
}

// Features returns the sensor values in the fixed order expected by
// maintenance predictors: temperature, vibration, pressure.
func (r SensorReading) Features() []float64 {
	return []float64{r.Temperature, r.Vibration, r.Pressure}
}
