package notify

import (
	"context"

	"github.com/kilianp07/maintdispatch/core/logger"
	"github.com/kilianp07/maintdispatch/core/notify"
)

// LogNotifier writes alerts to the log instead of sending them. Used as the
// default channel in development.
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier returns a log-only notifier.
func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

// Notify implements core/notify.Notifier.
func (n *LogNotifier) Notify(ctx context.Context, contact, subject, body string) notify.Delivery {
	n.logger.Infof("alert for %s: %s", contact, subject)
	n.logger.Debugw("alert body", map[string]any{"contact": contact, "body": body})
	return notify.Delivery{Delivered: true}
}
