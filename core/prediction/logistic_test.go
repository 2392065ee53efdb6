package prediction

import (
	"math"
	"testing"

	"github.com/kilianp07/maintdispatch/core/model"
)

func TestLogisticPredictor_KnownReadings(t *testing.T) {
	p := NewLogisticPredictor()
	cases := []struct {
		machine string
		reading model.SensorReading
		want    bool
	}{
		{"PUMP-A-01", model.SensorReading{Temperature: 70.5, Vibration: 1.48, Pressure: 301.5}, false},
		{"MOTOR-B-02", model.SensorReading{Temperature: 92.3, Vibration: 8.7, Pressure: 145.2}, true},
		{"TURBINE-C-01", model.SensorReading{Temperature: 152.5, Vibration: 0.83, Pressure: 501.4}, false},
		{"TURBINE-C-01 at rated maximum", model.SensorReading{Temperature: 180, Vibration: 3.0, Pressure: 600}, false},
		{"GEARBOX-F-03", model.SensorReading{Temperature: 96.1, Vibration: 8.1, Pressure: 174.5}, true},
		{"HVAC-G-11", model.SensorReading{Temperature: 55.3, Vibration: 1.11, Pressure: 125.6}, false},
	}
	for _, c := range cases {
		got, err := p.Predict(c.reading)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.machine, err)
		}
		if got != c.want {
			t.Errorf("%s: expected %v, got %v", c.machine, c.want, got)
		}
	}
}

func TestLogisticPredictor_Deterministic(t *testing.T) {
	p := NewLogisticPredictor()
	r := model.SensorReading{Temperature: 92.3, Vibration: 8.7, Pressure: 145.2}
	first, err := p.Predict(r)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		got, err := p.Predict(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("prediction changed between identical calls")
		}
	}
}

func TestLogisticPredictor_NonFinite(t *testing.T) {
	p := NewLogisticPredictor()
	if _, err := p.Predict(model.SensorReading{Temperature: math.NaN()}); err == nil {
		t.Error("expected error for NaN feature")
	}
	if _, err := p.Predict(model.SensorReading{Pressure: math.Inf(1)}); err == nil {
		t.Error("expected error for infinite feature")
	}
}
