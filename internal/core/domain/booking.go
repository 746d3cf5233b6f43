package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// confirmed and cancelled are terminal: they have no outgoing edges.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending: {StatusConfirmed, StatusCancelled},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidDateRange = errors.New("date_from must be before date_to")
var ErrDateConflict = errors.New("dates overlap an existing booking")
var ErrForbidden = errors.New("access forbidden")

// ValidStatus reports whether s names a known booking status.
func ValidStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is legal. A
// transition to the current status is illegal, so retrying an
// already-applied transition fails loudly instead of succeeding silently.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Actor is the authenticated identity attempting an operation.
type Actor struct {
	ID   string
	Role string
}

// Booking links a student to a property over a date range.
type Booking struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	StudentID  string        `json:"student_id" bson:"student_id"`
	PropertyID string        `json:"property_id" bson:"property_id"`
	DateFrom   time.Time     `json:"date_from" bson:"date_from"`
	DateTo     time.Time     `json:"date_to" bson:"date_to"`
	Status     BookingStatus `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}

// CanActorTransition reports whether actor may move this booking to target,
// given the owner of the booked property. It assumes the transition itself
// is legal; call CanTransitionTo first.
//
//	pending → confirmed: property owner or admin
//	pending → cancelled: creating student, property owner, or admin
func (b *Booking) CanActorTransition(actor Actor, target BookingStatus, propertyOwnerID string) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	if actor.ID == propertyOwnerID {
		return true
	}
	if target == StatusCancelled && actor.ID == b.StudentID {
		return true
	}
	return false
}

// Overlaps reports whether the booking's date range intersects [from, to).
func (b *Booking) Overlaps(from, to time.Time) bool {
	return b.DateFrom.Before(to) && from.Before(b.DateTo)
}
