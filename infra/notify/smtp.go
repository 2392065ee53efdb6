package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/kilianp07/maintdispatch/core/logger"
	"github.com/kilianp07/maintdispatch/core/notify"
)

// SMTPConfig defines the mail relay used for email alerts.
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	From     string `json:"from"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SetDefaults applies sane defaults.
func (c *SMTPConfig) SetDefaults() {
	if c.Port == 0 {
		c.Port = 587
	}
}

// Validate checks mandatory fields.
func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.From == "" {
		return fmt.Errorf("smtp from address is required")
	}
	return nil
}

// SMTPNotifier sends alerts as plain-text email.
type SMTPNotifier struct {
	cfg    SMTPConfig
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	logger logger.Logger
}

// NewSMTPNotifier returns a mailer for the given relay.
func NewSMTPNotifier(cfg SMTPConfig, log logger.Logger) (*SMTPNotifier, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail, logger: log}, nil
}

// Notify implements core/notify.Notifier.
func (n *SMTPNotifier) Notify(ctx context.Context, contact, subject, body string) notify.Delivery {
	if contact == "" {
		return notify.Delivery{Delivered: false, Error: "no contact address resolved"}
	}
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", contact)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := net.JoinHostPort(n.cfg.Host, fmt.Sprint(n.cfg.Port))
	if err := n.send(addr, auth, n.cfg.From, []string{contact}, []byte(msg.String())); err != nil {
		n.logger.Warnf("smtp send to %s failed: %v", contact, err)
		return notify.Delivery{Delivered: false, Error: err.Error()}
	}
	return notify.Delivery{Delivered: true}
}
