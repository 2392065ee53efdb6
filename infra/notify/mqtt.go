// Package notify provides the alert delivery channels: MQTT, NATS, SMTP and
// a log-only fallback. Each implements core/notify.Notifier and owns its own
// timeout and retry policy; the dispatch decision never depends on delivery.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/kilianp07/maintdispatch/core/logger"
	"github.com/kilianp07/maintdispatch/core/notify"
)

// MQTTConfig defines the connection parameters for the Paho MQTT notifier.
type MQTTConfig struct {
	Broker     string `json:"broker"`
	ClientID   string `json:"client_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Topic      string `json:"topic"`
	QoS        byte   `json:"qos"`
	Retain     bool   `json:"retain"`
	MaxRetries int    `json:"max_retries"`
	BackoffMS  int    `json:"backoff_ms"`
}

// SetDefaults applies sane defaults.
func (c *MQTTConfig) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "maintdispatch-" + uuid.NewString()[:8]
	}
	if c.Topic == "" {
		c.Topic = "factory/maintenance/alerts"
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.BackoffMS <= 0 {
		c.BackoffMS = 500
	}
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// MQTTNotifier publishes alerts as JSON messages on a single topic.
type MQTTNotifier struct {
	cli        pahoClient
	topic      string
	qos        byte
	retain     bool
	maxRetries int
	backoff    time.Duration
	logger     logger.Logger
}

// alertMessage is the wire format of a published alert.
type alertMessage struct {
	Contact string    `json:"contact"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// NewMQTTNotifier connects to the broker and returns the notifier.
func NewMQTTNotifier(cfg MQTTConfig, log logger.Logger) (*MQTTNotifier, error) {
	cfg.SetDefaults()
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true)
	cli := newMQTTClient(opts)
	tok := cli.Connect()
	if !tok.WaitTimeout(5 * time.Second) {
		return nil, fmt.Errorf("mqtt connect: timeout")
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &MQTTNotifier{
		cli:        cli,
		topic:      cfg.Topic,
		qos:        cfg.QoS,
		retain:     cfg.Retain,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		logger:     log,
	}, nil
}

// Notify implements core/notify.Notifier. Publishes are retried with a fixed
// backoff up to the configured limit.
func (n *MQTTNotifier) Notify(ctx context.Context, contact, subject, body string) notify.Delivery {
	payload, err := json.Marshal(alertMessage{Contact: contact, Subject: subject, Body: body, SentAt: time.Now().UTC()})
	if err != nil {
		return notify.Delivery{Delivered: false, Error: err.Error()}
	}
	var lastErr error
	for attempt := 0; attempt < n.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return notify.Delivery{Delivered: false, Error: ctx.Err().Error()}
			case <-time.After(n.backoff):
			}
		}
		tok := n.cli.Publish(n.topic, n.qos, n.retain, payload)
		if tok.WaitTimeout(5*time.Second) && tok.Error() == nil {
			return notify.Delivery{Delivered: true}
		}
		lastErr = tok.Error()
		if lastErr == nil {
			lastErr = fmt.Errorf("mqtt publish timeout")
		}
		n.logger.Warnf("mqtt publish attempt %d failed: %v", attempt+1, lastErr)
	}
	return notify.Delivery{Delivered: false, Error: lastErr.Error()}
}

// Close disconnects from the broker.
func (n *MQTTNotifier) Close() {
	n.cli.Disconnect(250)
}
