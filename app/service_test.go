package app

import (
	"context"
	"testing"

	"github.com/kilianp07/maintdispatch/config"
	"github.com/kilianp07/maintdispatch/core/dispatch"
)

func TestServiceWiring(t *testing.T) {
	cfg := &config.Config{}
	cfg.Notify.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Plant.SetDefaults()
	cfg.Metrics.SetDefaults()

	svc, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()

	res, err := svc.Resolver.Dispatch(context.Background(), "MOTOR-B-02")
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != dispatch.StatusSuccess {
		t.Fatalf("expected success, got %v (%s)", res.Status, res.Reason)
	}
	if res.Notification == nil || !res.Notification.Delivered {
		t.Fatal("log notifier should report delivery")
	}
}

func TestServiceContactOverride(t *testing.T) {
	cfg := &config.Config{}
	cfg.Notify.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Plant.Contacts = map[string]string{"Motor": "night-shift@plant.local"}
	cfg.Plant.DefaultContact = "ops@plant.local"

	svc, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()

	res, err := svc.Resolver.Dispatch(context.Background(), "MOTOR-B-02")
	if err != nil {
		t.Fatal(err)
	}
	if res.Contact != "night-shift@plant.local" {
		t.Fatalf("expected contact override, got %s", res.Contact)
	}
}
