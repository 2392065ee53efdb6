package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kilianp07/maintdispatch/core/metrics"
	"github.com/kilianp07/maintdispatch/infra/logger"
)

func TestInfluxSink_RecordAttempt(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket", logger.NopLogger{})
	rec := metrics.AttemptRecord{
		AttemptID:    "a1",
		MachineID:    "MOTOR-B-02",
		MachineType:  "Motor",
		Status:       "success",
		PartID:       "part-brg-001",
		TechnicianID: "tech-001",
		Notified:     true,
		Duration:     42 * time.Millisecond,
		Time:         time.Now(),
	}
	if err := sink.RecordAttempt(rec); err != nil {
		t.Fatalf("record error: %v", err)
	}
	for _, want := range []string{"dispatch_attempt", "machine_id=MOTOR-B-02", "status=success", "notified=true", `part_id="part-brg-001"`} {
		if !strings.Contains(body, want) {
			t.Errorf("line protocol missing %q: %s", want, body)
		}
	}
}

func TestNewInfluxSinkWithFallback_Unhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := Config{InfluxURL: srv.URL, InfluxOrg: "org", InfluxBucket: "bucket"}
	sink := NewInfluxSinkWithFallback(cfg, logger.NopLogger{})
	if _, ok := sink.(NopSink); !ok {
		t.Fatalf("expected NopSink fallback, got %T", sink)
	}
}
