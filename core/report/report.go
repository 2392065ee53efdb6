// Package report turns already-computed pipeline data into human-readable
// text. It is a pure formatting layer: nothing produced here feeds back into
// any decision.
package report

import (
	"fmt"
	"strings"

	"github.com/kilianp07/maintdispatch/core/classify"
	"github.com/kilianp07/maintdispatch/core/model"
)

// DescribeIssue builds the free-text issue description from the contributing
// signals. The matcher tokenizes this text, so the signal reasons carry the
// metric names the catalog keywords are written against.
func DescribeIssue(machineID string, signals []classify.Signal) string {
	if len(signals) == 0 {
		return fmt.Sprintf("abnormal sensor readings detected on %s", machineID)
	}
	reasons := make([]string, 0, len(signals))
	for _, s := range signals {
		reasons = append(reasons, s.Reason)
	}
	return strings.Join(reasons, "; ")
}

// Alert formats the subject and body of a maintenance alert for a successful
// dispatch.
func Alert(machine model.Machine, req model.DispatchRequest, partName, partLocation, technicianName string) (subject, body string) {
	subject = fmt.Sprintf("Maintenance required: %s (%s)", machine.Name, machine.ID)
	var b strings.Builder
	fmt.Fprintf(&b, "Predictive maintenance has been scheduled for %s (%s).\n\n", machine.Name, machine.ID)
	fmt.Fprintf(&b, "Detected issue: %s\n", req.IssueDescription)
	fmt.Fprintf(&b, "Required part: %s (%s)\n", partName, partLocation)
	fmt.Fprintf(&b, "Assigned technician: %s\n", technicianName)
	fmt.Fprintf(&b, "\nLast maintenance: %s\n", machine.LastMaintenance.Format("2006-01-02"))
	return subject, b.String()
}

// VerdictSentence phrases a classification verdict the way the maintenance
// reports read, e.g. "Maintenance is predicted as True for machine MOTOR-B-02
// due to vibration 8.7 mm/s above the nominal range."
func VerdictSentence(machineID string, v classify.Verdict) string {
	if !v.NeedsMaintenance {
		return fmt.Sprintf("Maintenance is predicted as False for machine %s, as all sensor values are within normal operating ranges.", machineID)
	}
	if len(v.Signals) == 0 {
		return fmt.Sprintf("Maintenance is predicted as True for machine %s.", machineID)
	}
	return fmt.Sprintf("Maintenance is predicted as True for machine %s due to %s.", machineID, DescribeIssue(machineID, v.Signals))
}
