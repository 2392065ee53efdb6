package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/kilianp07/maintdispatch/core/logger"
	"github.com/kilianp07/maintdispatch/core/notify"
)

// NATSConfig defines the connection parameters for the NATS notifier.
type NATSConfig struct {
	URL     string `json:"url"`
	Subject string `json:"subject"`
	Name    string `json:"name"`
}

// SetDefaults applies sane defaults.
func (c *NATSConfig) SetDefaults() {
	if c.URL == "" {
		c.URL = nats.DefaultURL
	}
	if c.Subject == "" {
		c.Subject = "factory.maintenance.alerts"
	}
	if c.Name == "" {
		c.Name = "maintdispatch"
	}
}

// NATSNotifier publishes alerts on a NATS subject for deployments without an
// MQTT broker.
type NATSNotifier struct {
	conn    *nats.Conn
	subject string
	logger  logger.Logger
}

// NewNATSNotifier connects to the NATS server.
func NewNATSNotifier(cfg NATSConfig, log logger.Logger) (*NATSNotifier, error) {
	cfg.SetDefaults()
	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(3),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSNotifier{conn: conn, subject: cfg.Subject, logger: log}, nil
}

// Notify implements core/notify.Notifier.
func (n *NATSNotifier) Notify(ctx context.Context, contact, subject, body string) notify.Delivery {
	payload, err := json.Marshal(alertMessage{Contact: contact, Subject: subject, Body: body, SentAt: time.Now().UTC()})
	if err != nil {
		return notify.Delivery{Delivered: false, Error: err.Error()}
	}
	if err := n.conn.Publish(n.subject, payload); err != nil {
		n.logger.Warnf("nats publish failed: %v", err)
		return notify.Delivery{Delivered: false, Error: err.Error()}
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		n.logger.Warnf("nats flush failed: %v", err)
		return notify.Delivery{Delivered: false, Error: err.Error()}
	}
	return notify.Delivery{Delivered: true}
}

// Close drains the connection.
func (n *NATSNotifier) Close() {
	if err := n.conn.Drain(); err != nil {
		n.logger.Warnf("nats drain: %v", err)
	}
}
