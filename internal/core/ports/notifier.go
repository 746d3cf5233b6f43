package ports

import (
	"context"
	"time"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// BookingEvent describes a booking lifecycle change fanned out to interested
// parties. Delivery channels (email, push) live behind the Notifier boundary.
type BookingEvent struct {
	BookingID  string
	PropertyID string
	StudentID  string
	Status     domain.BookingStatus
	OccurredAt time.Time
}

// Notifier receives booking lifecycle events. Implementations must tolerate
// being called concurrently for different bookings; events for the same
// booking arrive in order.
type Notifier interface {
	Notify(ctx context.Context, event BookingEvent) error
}

// EventSink is the producer-side interface the booking service uses to hand
// off events without blocking the request.
type EventSink interface {
	Enqueue(event BookingEvent)
}
