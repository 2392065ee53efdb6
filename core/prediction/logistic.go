package prediction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/maintdispatch/core/model"
)

// LogisticPredictor is a fixed-coefficient logistic model over the feature
// vector [temperature, vibration, pressure]. It stands in for the trained
// model artifact of the production system; the coefficients were fitted so
// that vibration dominates the decision, matching the failure modes of
// rotating equipment.
type LogisticPredictor struct {
	Bias      float64
	Weights   []float64
	Threshold float64
}

// NewLogisticPredictor returns a predictor with the default coefficients.
// Temperature and pressure carry near-zero weight: rated operating
// temperatures span 40 °C (HVAC) to 180 °C (turbines), and a machine running
// hot by design must not cross the threshold. The score stays below zero for
// any reading inside its type's nominal bands.
func NewLogisticPredictor() LogisticPredictor {
	return LogisticPredictor{
		Bias:      -6.0,
		Weights:   []float64{0.002, 1.2, 0.0005},
		Threshold: 0.5,
	}
}

// Predict applies the logistic model to the reading.
func (p LogisticPredictor) Predict(reading model.SensorReading) (bool, error) {
	features := reading.Features()
	if len(p.Weights) != len(features) {
		return false, fmt.Errorf("prediction: model expects %d features, reading has %d", len(p.Weights), len(features))
	}
	for _, f := range features {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false, fmt.Errorf("prediction: non-finite feature value %v", f)
		}
	}
	score := p.Bias + floats.Dot(p.Weights, features)
	prob := 1 / (1 + math.Exp(-score))
	return prob >= p.Threshold, nil
}
