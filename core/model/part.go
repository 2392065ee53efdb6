package model

// Part is a spare part in the inventory catalog. Keywords connect free-text
// issue descriptions to the part; ApplicableMachineTypes is advisory context
// for tie-breaking, not a hard filter.
type Part struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Quantity int      `json:"quantity"`
	Location string   `json:"location"`

	ApplicableMachineTypes []string `json:"applicable_machine_types"`
}

// InStock reports whether the part can be issued. Quantity is a hard
// eligibility gate regardless of match quality.
func (p Part) InStock() bool {
	return p.Quantity > 0
}

// AppliesTo reports whether the part is listed for the given machine type.
func (p Part) AppliesTo(machineType string) bool {
	for _, t := range p.ApplicableMachineTypes {
		if t == machineType {
			return true
		}
	}
	return false
}
