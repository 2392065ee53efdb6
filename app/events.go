package app

import (
	"context"

	"github.com/kilianp07/maintdispatch/core/events"
	"github.com/kilianp07/maintdispatch/internal/eventbus"
)

// watchEvents mirrors pipeline events into the log until the context is
// cancelled. Exporters that need more than logs subscribe to the bus
// themselves.
func (s *Service) watchEvents(ctx context.Context) {
	eventbus.Drain(ctx, s.bus, func(e eventbus.Event) {
		switch ev := e.(type) {
		case events.VerdictEvent:
			s.log.Debugw("verdict", map[string]any{
				"attempt_id": ev.AttemptID,
				"machine_id": ev.MachineID,
				"needs":      ev.Verdict.NeedsMaintenance,
			})
		case events.PartMatchEvent:
			s.log.Debugw("part match", map[string]any{
				"attempt_id": ev.AttemptID,
				"state":      ev.State,
				"part_id":    ev.PartID,
			})
		case events.TechnicianMatchEvent:
			s.log.Debugw("technician match", map[string]any{
				"attempt_id":    ev.AttemptID,
				"state":         ev.State,
				"technician_id": ev.TechnicianID,
			})
		case events.OutcomeEvent:
			s.log.Infof("attempt %s for %s finished: %s", ev.AttemptID, ev.MachineID, ev.Status)
		case events.NotificationEvent:
			if ev.Err != nil {
				s.log.Warnf("alert for %s to %s failed: %v", ev.MachineID, ev.Contact, ev.Err)
			}
		}
	})
}
