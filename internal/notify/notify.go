// Package notify defines the notification sink informed of successful
// create/update/delete outcomes, for user-facing feedback. The core never
// depends on the sink being available: services treat a nil Notifier as the
// no-op implementation.
package notify

import (
	"context"
	"log/slog"
)

// Event is the kind of outcome being reported.
type Event string

const (
	EventCreated Event = "created"
	EventUpdated Event = "updated"
	EventDeleted Event = "deleted"
)

// Notifier receives successful-outcome notifications.
// Implementations must not fail the calling operation.
type Notifier interface {
	// Notify reports that subject (e.g. "itinerary", "activity") had event
	// applied to it.
	Notify(ctx context.Context, event Event, subject string)
}

// SlogNotifier writes each notification as a structured log line.
type SlogNotifier struct {
	log *slog.Logger
}

// NewSlogNotifier returns a Notifier backed by the given logger.
func NewSlogNotifier(log *slog.Logger) *SlogNotifier {
	return &SlogNotifier{log: log}
}

// Notify implements Notifier.
func (n *SlogNotifier) Notify(ctx context.Context, event Event, subject string) {
	n.log.InfoContext(ctx, "notification", "event", string(event), "subject", subject)
}

// Noop discards all notifications. Useful in tests.
type Noop struct{}

// Notify implements Notifier.
func (Noop) Notify(context.Context, Event, string) {}
