// Package notify holds Notifier implementations. Actual delivery channels
// (email, push) are external collaborators; the log notifier records the
// event stream that would be handed to them.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistay/rental-platform/internal/core/ports"
)

// LogNotifier writes booking lifecycle events to the structured log.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, event ports.BookingEvent) error {
	n.log.Info().
		Str("booking_id", event.BookingID).
		Str("property_id", event.PropertyID).
		Str("student_id", event.StudentID).
		Str("status", string(event.Status)).
		Time("occurred_at", event.OccurredAt).
		Msg("booking event")
	return nil
}
