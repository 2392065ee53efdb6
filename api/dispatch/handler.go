// Package dispatch exposes the dispatch pipeline over HTTP. Handlers only
// translate between JSON and the core types; no decision logic lives here.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kilianp07/maintdispatch/core/classify"
	coredispatch "github.com/kilianp07/maintdispatch/core/dispatch"
	"github.com/kilianp07/maintdispatch/core/logger"
	"github.com/kilianp07/maintdispatch/core/model"
	"github.com/kilianp07/maintdispatch/core/store"
)

// Runner runs dispatch attempts. Implemented by *dispatch.Resolver.
type Runner interface {
	Dispatch(ctx context.Context, machineID string) (coredispatch.Result, error)
	History() []coredispatch.Result
}

// MachineLister lists the known machines, for the read surface.
type MachineLister interface {
	Machines() []model.Machine
}

type dispatchRequest struct {
	MachineID string `json:"machine_id"`
}

type dispatchResponse struct {
	Result  coredispatch.Result `json:"result"`
	Summary string              `json:"summary"`
}

// NewDispatchHandler returns an HTTP handler running one dispatch attempt per
// POST /api/dispatch call.
func NewDispatchHandler(runner Runner, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req dispatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MachineID == "" {
			http.Error(w, "machine_id is required", http.StatusBadRequest)
			return
		}
		res, err := runner.Dispatch(r.Context(), req.MachineID)
		if err != nil {
			writeDispatchError(w, log, req.MachineID, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dispatchResponse{Result: res, Summary: res.Summary()}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func writeDispatchError(w http.ResponseWriter, log logger.Logger, machineID string, err error) {
	var ire *classify.InvalidReadingError
	switch {
	case store.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &ire):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("dispatch %s: %v", machineID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// NewHistoryHandler returns an HTTP handler exposing past attempts via
// GET /api/dispatch/history.
func NewHistoryHandler(runner Runner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runner.History()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// NewMachinesHandler returns an HTTP handler listing machines and their
// current readings via GET /api/machines.
func NewMachinesHandler(lister MachineLister, st store.FleetStore) http.Handler {
	type entry struct {
		Machine model.Machine        `json:"machine"`
		Reading *model.SensorReading `json:"reading,omitempty"`
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		machines := lister.Machines()
		entries := make([]entry, 0, len(machines))
		for _, m := range machines {
			e := entry{Machine: m}
			if reading, err := st.GetMachineReadings(r.Context(), m.ID); err == nil {
				e.Reading = &reading
			}
			entries = append(entries, e)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
