// Package config loads the service configuration from a YAML or JSON file
// with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/maintdispatch/infra/metrics"
	"github.com/kilianp07/maintdispatch/infra/notify"
)

// Config is the root configuration of the service.
type Config struct {
	Notify  NotifyConfig   `json:"notify"`
	Metrics metrics.Config `json:"metrics"`
	API     APIConfig      `json:"api"`
	Plant   PlantConfig    `json:"plant"`
}

// NotifyConfig selects the alert delivery channel.
type NotifyConfig struct {
	// Channel is one of "log", "mqtt", "nats" or "smtp".
	Channel string             `json:"channel"`
	MQTT    notify.MQTTConfig  `json:"mqtt"`
	NATS    notify.NATSConfig  `json:"nats"`
	SMTP    notify.SMTPConfig  `json:"smtp"`
}

// SetDefaults applies sane defaults.
func (c *NotifyConfig) SetDefaults() {
	if c.Channel == "" {
		c.Channel = "log"
	}
}

// Validate checks the selected channel.
func (c NotifyConfig) Validate() error {
	switch c.Channel {
	case "log", "mqtt", "nats", "smtp":
		return nil
	default:
		return fmt.Errorf("unknown notify channel %q", c.Channel)
	}
}

// APIConfig configures the HTTP API server.
type APIConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// PlantConfig configures alert contact resolution per machine type.
type PlantConfig struct {
	Contacts       map[string]string `json:"contacts"`
	DefaultContact string            `json:"default_contact"`
}

// SetDefaults applies sane defaults.
func (c *PlantConfig) SetDefaults() {
	if c.DefaultContact == "" {
		c.DefaultContact = "maintenance@plant.local"
	}
}

// Load reads and validates the configuration file. Environment variables
// prefixed with MD_ override file values, with __ separating nested keys.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("MD_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "md_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Notify.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Plant.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Notify.Validate(); err != nil {
		return nil, err
	}
	if cfg.Notify.Channel == "smtp" {
		cfg.Notify.SMTP.SetDefaults()
		if err := cfg.Notify.SMTP.Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
