package notify

import (
	"context"

	"go.uber.org/multierr"
)

// Notifier delivers one composed notification to a set of recipients.
// Channels that have no recipient concept (webhooks) ignore the list.
type Notifier interface {
	Send(ctx context.Context, recipients []string, subject, body string) error
}

type Multi []Notifier

// Send delivers through every channel. It keeps going past failures so one
// dead channel cannot hide another, and reports everything that went wrong
// in a single error.
func (m Multi) Send(ctx context.Context, recipients []string, subject, body string) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, recipients, subject, body))
	}
	return errs
}
