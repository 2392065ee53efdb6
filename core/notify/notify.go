// Package notify defines the alert delivery contract. Delivery is an
// external concern: a failed send degrades a successful dispatch but never
// rolls back the decision.
package notify

import "context"

// Delivery is the result of one alert send.
type Delivery struct {
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

// Notifier sends a human-readable alert to a contact address. The notifier
// owns its own retry and timeout policy.
type Notifier interface {
	Notify(ctx context.Context, contact, subject, body string) Delivery
}

// Nop discards all alerts and reports them delivered. Useful in tests and
// for deployments without an alert channel.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(ctx context.Context, contact, subject, body string) Delivery {
	return Delivery{Delivered: true}
}
