// Package classify maps a sensor reading to a maintenance verdict with an
// explanation. The boolean verdict is delegated to a prediction.Predictor;
// the contributing signals are derived independently from documented nominal
// bands and never feed back into the decision.
package classify

import (
	"fmt"
	"math"

	"github.com/kilianp07/maintdispatch/core/model"
	"github.com/kilianp07/maintdispatch/core/prediction"
)

// InvalidReadingError reports a malformed sensor reading. It halts the
// pipeline; values are never coerced.
type InvalidReadingError struct {
	MachineID string
	Metric    string
	Value     float64
}

func (e *InvalidReadingError) Error() string {
	return fmt.Sprintf("invalid reading for machine %s: %s is %v", e.MachineID, e.Metric, e.Value)
}

// Signal names one sensor metric that contributed to the explanation of a
// positive verdict.
type Signal struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Reason string  `json:"reason"`
}

// Verdict is the classification result for one reading.
type Verdict struct {
	NeedsMaintenance bool     `json:"needs_maintenance"`
	Signals          []Signal `json:"contributing_signals,omitempty"`
}

// Classifier validates readings, obtains the verdict from the predictor and
// attaches band-based explanations.
type Classifier struct {
	predictor prediction.Predictor
	bands     map[string]NominalBands
}

// New returns a Classifier using the given predictor. If bands is nil the
// default datasheet bands are used.
func New(p prediction.Predictor, bands map[string]NominalBands) *Classifier {
	if bands == nil {
		bands = DefaultBands
	}
	return &Classifier{predictor: p, bands: bands}
}

// Classify validates the reading and returns the maintenance verdict. The
// contributing signals list the metrics outside their nominal band for the
// machine type; it is populated for explanation only and may be empty even on
// a positive verdict.
func (c *Classifier) Classify(machine model.Machine, reading model.SensorReading) (Verdict, error) {
	if err := validate(reading); err != nil {
		return Verdict{}, err
	}
	needs, err := c.predictor.Predict(reading)
	if err != nil {
		return Verdict{}, fmt.Errorf("classify %s: %w", machine.ID, err)
	}
	v := Verdict{NeedsMaintenance: needs}
	if needs {
		v.Signals = c.explain(machine.Type, reading)
	}
	return v, nil
}

func validate(r model.SensorReading) error {
	metrics := []struct {
		name  string
		value float64
	}{
		{"temperature", r.Temperature},
		{"vibration", r.Vibration},
		{"pressure", r.Pressure},
	}
	for _, m := range metrics {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
			return &InvalidReadingError{MachineID: r.MachineID, Metric: m.name, Value: m.value}
		}
	}
	return nil
}

func (c *Classifier) explain(machineType string, r model.SensorReading) []Signal {
	b := BandsFor(c.bands, machineType)
	var signals []Signal
	add := func(metric string, value float64, band Band, unit string) {
		if band.Contains(value) {
			return
		}
		direction := "above"
		limit := band.Max
		if value < band.Min {
			direction = "below"
			limit = band.Min
		}
		signals = append(signals, Signal{
			Metric: metric,
			Value:  value,
			Reason: fmt.Sprintf("%s %.1f %s is %s the nominal %.1f-%.1f %s range (limit %.1f)", metric, value, unit, direction, band.Min, band.Max, unit, limit),
		})
	}
	add("temperature", r.Temperature, b.Temperature, "°C")
	add("vibration", r.Vibration, b.Vibration, "mm/s")
	add("pressure", r.Pressure, b.Pressure, "kPa")
	return signals
}
