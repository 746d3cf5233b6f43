package ports

import (
	"context"
	"time"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// CreateBookingInput carries the fields for a new reservation request.
// StudentID is taken from the authenticated actor, never the payload.
type CreateBookingInput struct {
	StudentID  string
	PropertyID string
	DateFrom   time.Time
	DateTo     time.Time
}

// BookingService governs the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// Transition moves the booking to target on behalf of actor, enforcing
	// both the transition table and the allowed-actor rules.
	Transition(ctx context.Context, bookingID string, actor domain.Actor, target domain.BookingStatus) (*domain.Booking, error)
	ListForStudent(ctx context.Context, studentID string) ([]*domain.Booking, error)
	// ListForProperty returns the property's bookings after verifying that
	// callerID owns the property.
	ListForProperty(ctx context.Context, propertyID, callerID string) ([]*domain.Booking, error)
}
