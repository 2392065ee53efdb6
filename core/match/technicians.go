package match

import "github.com/kilianp07/maintdispatch/core/model"

// TechnicianState is the result state of a roster search.
type TechnicianState int

const (
	TechnicianNoneAvailable TechnicianState = iota
	TechnicianFound
)

// String returns a human-readable representation of the state.
func (s TechnicianState) String() string {
	switch s {
	case TechnicianFound:
		return "found"
	case TechnicianNoneAvailable:
		return "none_available"
	default:
		return "unknown"
	}
}

// TechnicianMatch is the outcome of a roster search. NoneAvailable covers
// both "no skill match" and "matched but busy"; callers needing the
// distinction must inspect the roster directly.
type TechnicianMatch struct {
	State      TechnicianState
	Technician model.Technician
	SkillHits  int
}

// FindTechnician searches the roster for an available technician whose skill
// set intersects the required skills. Availability and a non-empty
// intersection are hard gates; among eligible candidates the largest
// intersection wins, ties broken by lowest ID.
func FindTechnician(requiredSkills []string, roster []model.Technician) TechnicianMatch {
	best := TechnicianMatch{State: TechnicianNoneAvailable}
	for _, tech := range roster {
		if tech.Availability != model.Available {
			continue
		}
		hits := tech.SkillMatches(requiredSkills)
		if hits == 0 {
			continue
		}
		if best.State == TechnicianNoneAvailable ||
			hits > best.SkillHits ||
			(hits == best.SkillHits && tech.ID < best.Technician.ID) {
			best = TechnicianMatch{State: TechnicianFound, Technician: tech, SkillHits: hits}
		}
	}
	return best
}
