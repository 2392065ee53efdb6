// Package dispatch composes classification, part matching and technician
// matching into a single terminal outcome per attempt. The resolver is the
// only place the outcome taxonomy is decided; transports and exporters
// consume the Result it produces.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/maintdispatch/core/classify"
	"github.com/kilianp07/maintdispatch/core/events"
	"github.com/kilianp07/maintdispatch/core/logger"
	"github.com/kilianp07/maintdispatch/core/match"
	"github.com/kilianp07/maintdispatch/core/metrics"
	"github.com/kilianp07/maintdispatch/core/model"
	"github.com/kilianp07/maintdispatch/core/notify"
	"github.com/kilianp07/maintdispatch/core/report"
	"github.com/kilianp07/maintdispatch/core/store"
	"github.com/kilianp07/maintdispatch/internal/eventbus"
)

// Resolver runs dispatch attempts against a snapshot of the plant data.
type Resolver struct {
	store      store.FleetStore
	contacts   store.ContactResolver
	classifier *classify.Classifier
	notifier   notify.Notifier
	logger     logger.Logger
	metrics    metrics.OutcomeSink
	bus        eventbus.EventBus

	mu      sync.Mutex
	history []Result
}

// NewResolver creates a resolver. Store, classifier and logger are required;
// notifier, contacts, metrics and bus may be nil and are then skipped.
func NewResolver(st store.FleetStore, cls *classify.Classifier, n notify.Notifier, contacts store.ContactResolver, log logger.Logger, sink metrics.OutcomeSink, bus eventbus.EventBus) (*Resolver, error) {
	if st == nil || cls == nil || log == nil {
		return nil, fmt.Errorf("dispatch: nil parameter provided to NewResolver")
	}
	return &Resolver{
		store:      st,
		contacts:   contacts,
		classifier: cls,
		notifier:   n,
		logger:     log,
		metrics:    sink,
		bus:        bus,
	}, nil
}

// Dispatch runs one end-to-end attempt for the machine. Lookup and
// classification errors halt the pipeline and are returned; business
// outcomes always complete with a fully populated Result.
func (r *Resolver) Dispatch(ctx context.Context, machineID string) (Result, error) {
	start := time.Now()
	res := Result{
		AttemptID: uuid.NewString(),
		MachineID: machineID,
		Timestamp: start,
	}

	machine, err := r.store.GetMachineInfo(ctx, machineID)
	if err != nil {
		return Result{}, err
	}
	reading, err := r.store.GetMachineReadings(ctx, machineID)
	if err != nil {
		return Result{}, err
	}

	verdict, err := r.classifier.Classify(machine, reading)
	if err != nil {
		return Result{}, err
	}
	res.Verdict = verdict
	r.publish(events.VerdictEvent{AttemptID: res.AttemptID, MachineID: machineID, Verdict: verdict})

	if !verdict.NeedsMaintenance {
		res.Status = StatusHealthy
		r.logger.Infof("machine %s is healthy, no maintenance required", machineID)
		return r.finish(res, machine, start), nil
	}

	req := model.DispatchRequest{
		MachineID:        machineID,
		IssueDescription: report.DescribeIssue(machineID, verdict.Signals),
		RequiredSkills:   []string{machine.Type},
	}
	res.Request = &req
	r.logger.Debugw("maintenance required", map[string]any{
		"machine_id": machineID,
		"issue":      req.IssueDescription,
		"skills":     req.RequiredSkills,
	})

	catalog, err := r.store.GetInventory(ctx)
	if err != nil {
		return Result{}, err
	}
	roster, err := r.store.GetTechnicians(ctx)
	if err != nil {
		return Result{}, err
	}

	// The two searches are independent; neither result influences the other.
	partMatch := match.FindPart(req.IssueDescription, machine.Type, catalog)
	techMatch := match.FindTechnician(req.RequiredSkills, roster)
	r.publish(events.PartMatchEvent{AttemptID: res.AttemptID, MachineID: machineID, State: partMatch.State.String(), PartID: partMatch.Part.ID})
	r.publish(events.TechnicianMatchEvent{AttemptID: res.AttemptID, MachineID: machineID, State: techMatch.State.String(), TechnicianID: techMatch.Technician.ID})

	r.combine(&res, partMatch, techMatch)

	if res.Status == StatusSuccess {
		r.sendAlert(ctx, &res, machine)
	}
	return r.finish(res, machine, start), nil
}

// combine reconciles the two match results into exactly one outcome. A
// missing part blocks dispatch regardless of technician availability, so
// part-related failures take priority for reporting.
func (r *Resolver) combine(res *Result, pm match.PartMatch, tm match.TechnicianMatch) {
	switch pm.State {
	case match.PartOutOfStock:
		res.Status = StatusPartOutOfStock
		res.Reason = ReasonPartOutOfStock
		res.PartID = pm.Part.ID
		res.PartName = pm.Part.Name
		res.PartLocation = pm.Part.Location
		return
	case match.PartNoMatch:
		res.Status = StatusNoPart
		res.Reason = ReasonNoPart
		return
	}
	res.PartID = pm.Part.ID
	res.PartName = pm.Part.Name
	res.PartLocation = pm.Part.Location
	if tm.State != match.TechnicianFound {
		res.Status = StatusNoTechnician
		res.Reason = ReasonNoTechnician
		return
	}
	res.Status = StatusSuccess
	res.TechnicianID = tm.Technician.ID
	res.TechnicianName = tm.Technician.Name
}

// sendAlert notifies the resolved contact. A delivery failure degrades the
// result but never changes the outcome: the maintenance plan stands.
func (r *Resolver) sendAlert(ctx context.Context, res *Result, machine model.Machine) {
	if r.notifier == nil {
		return
	}
	contact := ""
	if r.contacts != nil {
		contact = r.contacts.ContactFor(machine)
	}
	subject, body := report.Alert(machine, *res.Request, res.PartName, res.PartLocation, res.TechnicianName)
	delivery := r.notifier.Notify(ctx, contact, subject, body)
	res.Contact = contact
	res.Notification = &delivery
	if !delivery.Delivered {
		r.logger.Warnf("alert delivery for %s failed: %s", machine.ID, delivery.Error)
	}
	r.publish(events.NotificationEvent{
		AttemptID: res.AttemptID,
		MachineID: machine.ID,
		Contact:   contact,
		Delivered: delivery.Delivered,
		Err:       deliveryErr(delivery),
	})
	if nr, ok := r.metrics.(metrics.NotificationRecorder); ok {
		if err := nr.RecordNotification(machine.ID, delivery.Delivered); err != nil {
			r.logger.Errorf("notification metrics error: %v", err)
		}
	}
}

func deliveryErr(d notify.Delivery) error {
	if d.Delivered || d.Error == "" {
		return nil
	}
	return fmt.Errorf("%s", d.Error)
}

// finish stamps the duration, records metrics and appends to history.
func (r *Resolver) finish(res Result, machine model.Machine, start time.Time) Result {
	res.Duration = time.Since(start)
	r.publish(events.OutcomeEvent{
		AttemptID: res.AttemptID,
		MachineID: res.MachineID,
		Status:    res.Status.String(),
		Request:   derefRequest(res.Request),
	})
	if r.metrics != nil {
		rec := metrics.AttemptRecord{
			AttemptID:    res.AttemptID,
			MachineID:    res.MachineID,
			MachineType:  machine.Type,
			Status:       res.Status.String(),
			PartID:       res.PartID,
			TechnicianID: res.TechnicianID,
			Notified:     res.Notification != nil && res.Notification.Delivered,
			Duration:     res.Duration,
			Time:         res.Timestamp,
		}
		if err := r.metrics.RecordAttempt(rec); err != nil {
			r.logger.Errorf("metrics error: %v", err)
		}
	}
	r.mu.Lock()
	r.history = append(r.history, res)
	r.mu.Unlock()
	return res
}

func derefRequest(req *model.DispatchRequest) model.DispatchRequest {
	if req == nil {
		return model.DispatchRequest{}
	}
	return *req
}

// History returns a copy of all results produced by this resolver.
func (r *Resolver) History() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Result(nil), r.history...)
}

func (r *Resolver) publish(e eventbus.Event) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}
