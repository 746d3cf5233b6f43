package ports

import (
	"context"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// CreatePropertyInput carries the listing fields for a new property. The
// owner is never part of the input: it is taken from the authenticated actor.
type CreatePropertyInput struct {
	Title         string
	Description   string
	Address       string
	City          string
	PricePerMonth float64
	Bedrooms      int
	Amenities     []string
}

// PropertyService defines use-case operations for property listings.
// Every mutation re-verifies ownership against the stored record.
type PropertyService interface {
	Create(ctx context.Context, ownerID string, input CreatePropertyInput) (*domain.Property, error)
	List(ctx context.Context, ownerID string) ([]*domain.Property, error)
	Count(ctx context.Context, ownerID string) (int64, error)
	Update(ctx context.Context, propertyID, callerID string, patch domain.PropertyPatch) (*domain.Property, error)
	Delete(ctx context.Context, propertyID, callerID string) error
}
