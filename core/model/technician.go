package model

// Availability describes whether a technician can take an assignment.
type Availability int

const (
	Available Availability = iota
	Busy
)

// String returns a human-readable representation of the availability.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Availability) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAvailability converts an availability name. Anything that is not
// "available" is treated as Busy so malformed roster data never makes a
// technician eligible by accident.
func ParseAvailability(s string) Availability {
	if s == "available" {
		return Available
	}
	return Busy
}

// Technician is a member of the maintenance staff. Availability is a hard
// eligibility gate: a busy technician is never dispatched regardless of how
// well their skills match.
type Technician struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Role              string       `json:"role"`
	Skills            []string     `json:"skills"`
	Availability      Availability `json:"availability"`
	CurrentAssignment string       `json:"current_assignment,omitempty"`
}

// SkillMatches returns the number of required skills this technician covers.
func (t Technician) SkillMatches(required []string) int {
	n := 0
	for _, req := range required {
		for _, s := range t.Skills {
			if s == req {
				n++
				break
			}
		}
	}
	return n
}
