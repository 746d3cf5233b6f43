package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/unistay/rental-platform/internal/api/metrics"
	"github.com/unistay/rental-platform/internal/core/domain"
	"github.com/unistay/rental-platform/internal/core/ports"
)

// PropertyLocker abstracts the per-property creation hold (Redis). The hold
// serializes the overlap check against concurrent booking attempts on the
// same property.
type PropertyLocker interface {
	// Acquire takes the hold for propertyID and returns a release function.
	// A hold already taken by another request yields domain.ErrConflict.
	Acquire(ctx context.Context, propertyID string) (func(), error)
}

type bookingService struct {
	bookings   ports.BookingRepository
	properties ports.PropertyRepository
	locker     PropertyLocker
	events     ports.EventSink
	log        zerolog.Logger
}

// NewBookingService returns a BookingService implementation.
func NewBookingService(
	bookings ports.BookingRepository,
	properties ports.PropertyRepository,
	locker PropertyLocker,
	events ports.EventSink,
	log zerolog.Logger,
) ports.BookingService {
	return &bookingService{
		bookings:   bookings,
		properties: properties,
		locker:     locker,
		events:     events,
		log:        log,
	}
}

// Create validates the date range, rejects overlapping requests under a
// per-property hold, and stores the booking in the pending state.
func (s *bookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if !input.DateFrom.Before(input.DateTo) {
		return nil, domain.ErrInvalidDateRange
	}

	if _, err := s.properties.FindByID(ctx, input.PropertyID); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	release, err := s.locker.Acquire(ctx, input.PropertyID)
	if err != nil {
		metrics.BookingConflictsTotal.WithLabelValues("hold_busy").Inc()
		return nil, fmt.Errorf("create booking: %w", err)
	}
	defer release()

	overlapping, err := s.bookings.FindOverlapping(ctx, input.PropertyID, input.DateFrom, input.DateTo)
	if err != nil {
		return nil, fmt.Errorf("create booking: overlap check: %w", err)
	}
	if len(overlapping) > 0 {
		metrics.BookingConflictsTotal.WithLabelValues("date_overlap").Inc()
		return nil, domain.ErrDateConflict
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		StudentID:  input.StudentID,
		PropertyID: input.PropertyID,
		DateFrom:   input.DateFrom.UTC(),
		DateTo:     input.DateTo.UTC(),
		Status:     domain.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Str("property_id", input.PropertyID).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("student_id", booking.StudentID).
		Str("property_id", booking.PropertyID).
		Msg("booking created")

	s.events.Enqueue(ports.BookingEvent{
		BookingID:  booking.ID,
		PropertyID: booking.PropertyID,
		StudentID:  booking.StudentID,
		Status:     booking.Status,
		OccurredAt: now,
	})

	return booking, nil
}

// Transition applies a single lifecycle step on behalf of actor. Checks run
// in a fixed order: existence, transition legality, actor permission. The
// write is conditioned on the status the checks saw, so a concurrent winner
// turns into domain.ErrConflict rather than a silent overwrite.
func (s *bookingService) Transition(ctx context.Context, bookingID string, actor domain.Actor, target domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidStatus(target) {
		return nil, domain.ErrInvalidTransition
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(target) {
		metrics.BookingTransitionsTotal.WithLabelValues(string(target), "illegal").Inc()
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, target)
	}

	property, err := s.properties.FindByID(ctx, booking.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	if !booking.CanActorTransition(actor, target, property.OwnerID) {
		metrics.BookingTransitionsTotal.WithLabelValues(string(target), "forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, booking.Status, target)
	if err != nil {
		metrics.BookingTransitionsTotal.WithLabelValues(string(target), "conflict").Inc()
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(target), "applied").Inc()
	s.log.Info().
		Str("booking_id", bookingID).
		Str("actor_id", actor.ID).
		Str("status", string(target)).
		Msg("booking transitioned")

	s.events.Enqueue(ports.BookingEvent{
		BookingID:  updated.ID,
		PropertyID: updated.PropertyID,
		StudentID:  updated.StudentID,
		Status:     updated.Status,
		OccurredAt: updated.UpdatedAt,
	})

	return updated, nil
}

func (s *bookingService) ListForStudent(ctx context.Context, studentID string) ([]*domain.Booking, error) {
	return s.bookings.ListByStudent(ctx, studentID)
}

// ListForProperty returns the property's bookings, visible to its owner only.
func (s *bookingService) ListForProperty(ctx context.Context, propertyID, callerID string) ([]*domain.Booking, error) {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != callerID {
		return nil, domain.ErrNotOwner
	}
	return s.bookings.ListByProperty(ctx, propertyID)
}
