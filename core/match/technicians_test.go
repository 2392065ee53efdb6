package match

import (
	"testing"

	"github.com/kilianp07/maintdispatch/core/model"
)

func testRoster() []model.Technician {
	return []model.Technician{
		{ID: "tech-001", Name: "Alice Johnson", Skills: []string{"Pump", "Motor", "Compressor"}, Availability: model.Available},
		{ID: "tech-002", Name: "Bob Smith", Skills: []string{"Robotics", "HVAC"}, Availability: model.Busy},
		{ID: "tech-003", Name: "Carol Davis", Skills: []string{"Turbine", "Gearbox", "Motor"}, Availability: model.Available},
		{ID: "op-001", Name: "Dave Wilson", Skills: []string{"Pump", "Motor"}, Availability: model.Busy},
	}
}

func TestFindTechnician_MotorSkill(t *testing.T) {
	m := FindTechnician([]string{"Motor"}, testRoster())
	if m.State != TechnicianFound {
		t.Fatalf("expected found, got %v", m.State)
	}
	if m.Technician.Name != "Alice Johnson" {
		t.Fatalf("expected Alice Johnson via lowest id tie-break, got %s", m.Technician.Name)
	}
}

func TestFindTechnician_NeverBusy(t *testing.T) {
	m := FindTechnician([]string{"HVAC"}, testRoster())
	if m.State != TechnicianNoneAvailable {
		t.Fatalf("only busy technicians have HVAC, expected none available, got %v", m.State)
	}
	for _, skills := range [][]string{{"Motor"}, {"Pump"}, {"Gearbox"}} {
		got := FindTechnician(skills, testRoster())
		if got.State == TechnicianFound && got.Technician.Availability == model.Busy {
			t.Fatalf("returned busy technician %s", got.Technician.ID)
		}
	}
}

func TestFindTechnician_NoSkillMatch(t *testing.T) {
	m := FindTechnician([]string{"Laser"}, testRoster())
	if m.State != TechnicianNoneAvailable {
		t.Fatalf("expected none available, got %v", m.State)
	}
}

func TestFindTechnician_LargestIntersection(t *testing.T) {
	m := FindTechnician([]string{"Turbine", "Motor"}, testRoster())
	if m.Technician.ID != "tech-003" {
		t.Fatalf("expected tech-003 with two skill hits, got %s", m.Technician.ID)
	}
	if m.SkillHits != 2 {
		t.Fatalf("expected 2 skill hits, got %d", m.SkillHits)
	}
}

func TestFindTechnician_EmptyRoster(t *testing.T) {
	if m := FindTechnician([]string{"Motor"}, nil); m.State != TechnicianNoneAvailable {
		t.Fatalf("expected none available on empty roster, got %v", m.State)
	}
}
