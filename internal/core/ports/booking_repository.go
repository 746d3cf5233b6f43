package ports

import (
	"context"
	"time"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error)
	// FindOverlapping returns pending or confirmed bookings of the property
	// whose date range intersects [from, to).
	FindOverlapping(ctx context.Context, propertyID string, from, to time.Time) ([]*domain.Booking, error)
	// UpdateStatus moves the booking from one status to another with a single
	// conditional write. When the stored status no longer equals from (a
	// concurrent transition won), it yields domain.ErrConflict.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error)
}
