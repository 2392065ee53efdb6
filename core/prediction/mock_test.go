package prediction

import (
	"fmt"
	"testing"

	"github.com/kilianp07/maintdispatch/core/model"
)

func TestMockPredictor(t *testing.T) {
	m := MockPredictor{Verdicts: map[string]bool{"MOTOR-B-02": true}}
	got, err := m.Predict(model.SensorReading{MachineID: "MOTOR-B-02"})
	if err != nil || !got {
		t.Fatalf("expected true verdict, got %v %v", got, err)
	}
	got, err = m.Predict(model.SensorReading{MachineID: "PUMP-A-01"})
	if err != nil || got {
		t.Fatalf("expected false verdict for unknown machine, got %v %v", got, err)
	}
}

func TestMockPredictorError(t *testing.T) {
	m := MockPredictor{Err: fmt.Errorf("model unavailable")}
	if _, err := m.Predict(model.SensorReading{}); err == nil {
		t.Fatal("expected configured error")
	}
}
