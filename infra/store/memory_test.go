package store

import (
	"context"
	"testing"

	"github.com/kilianp07/maintdispatch/core/model"
	corestore "github.com/kilianp07/maintdispatch/core/store"
)

func TestSampleStoreLookups(t *testing.T) {
	s := NewSampleStore()
	ctx := context.Background()

	m, err := s.GetMachineInfo(ctx, "MOTOR-B-02")
	if err != nil {
		t.Fatal(err)
	}
	if m.Type != "Motor" || m.Name != "Electric Motor B2" {
		t.Fatalf("unexpected machine %+v", m)
	}

	r, err := s.GetMachineReadings(ctx, "MOTOR-B-02")
	if err != nil {
		t.Fatal(err)
	}
	if r.Vibration != 8.7 {
		t.Fatalf("unexpected reading %+v", r)
	}

	parts, err := s.GetInventory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 8 {
		t.Fatalf("expected 8 parts, got %d", len(parts))
	}
	techs, err := s.GetTechnicians(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(techs) != 5 {
		t.Fatalf("expected 5 staff members, got %d", len(techs))
	}
}

func TestUnknownMachine(t *testing.T) {
	s := NewSampleStore()
	_, err := s.GetMachineInfo(context.Background(), "LATHE-X-99")
	if !corestore.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	_, err = s.GetMachineReadings(context.Background(), "LATHE-X-99")
	if !corestore.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestContactResolution(t *testing.T) {
	s := NewSampleStore()
	if c := s.ContactFor(model.Machine{Type: "Motor"}); c != "motor-maintenance@plant.local" {
		t.Fatalf("unexpected contact %s", c)
	}
	if c := s.ContactFor(model.Machine{Type: "Robot"}); c != "maintenance@plant.local" {
		t.Fatalf("expected default contact, got %s", c)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewSampleStore()
	parts, _ := s.GetInventory(context.Background())
	parts[0].Quantity = 0
	again, _ := s.GetInventory(context.Background())
	if again[0].Quantity == 0 {
		t.Fatal("mutating a snapshot must not affect the store")
	}
}
