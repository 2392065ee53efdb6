package model

// DispatchRequest is derived once a positive maintenance verdict exists. It
// is ephemeral and never persisted.
type DispatchRequest struct {
	MachineID        string   `json:"machine_id"`
	IssueDescription string   `json:"issue_description"`
	RequiredSkills   []string `json:"required_skills"`
}
