package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `notify:
  channel: "mqtt"
  mqtt:
    broker: "tcp://localhost:1883"
    client_id: "maint"
    topic: "factory/maintenance/alerts"
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9091"
api:
  addr: ":8088"
plant:
  default_contact: "ops@plant.local"
  contacts:
    Motor: "motor-team@plant.local"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"channel", cfg.Notify.Channel, "mqtt"},
		{"broker", cfg.Notify.MQTT.Broker, "tcp://localhost:1883"},
		{"client_id", cfg.Notify.MQTT.ClientID, "maint"},
		{"topic", cfg.Notify.MQTT.Topic, "factory/maintenance/alerts"},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_addr", cfg.Metrics.PrometheusAddr, ":9091"},
		{"api_addr", cfg.API.Addr, ":8088"},
		{"default_contact", cfg.Plant.DefaultContact, "ops@plant.local"},
		{"motor_contact", cfg.Plant.Contacts["Motor"], "motor-team@plant.local"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Notify.Channel != "log" {
		t.Errorf("expected log channel default, got %s", cfg.Notify.Channel)
	}
	if cfg.API.Addr != ":8080" {
		t.Errorf("expected :8080 default, got %s", cfg.API.Addr)
	}
	if cfg.Plant.DefaultContact == "" {
		t.Error("expected default contact")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  addr: \":8080\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MD_API__ADDR", ":9999")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Addr != ":9999" {
		t.Errorf("expected env override :9999, got %s", cfg.API.Addr)
	}
}

func TestLoadRejectsBadChannel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("notify:\n  channel: \"pigeon\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown channel")
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadSMTPValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("notify:\n  channel: \"smtp\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for smtp channel without host")
	}
}
