package ports

import (
	"context"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// PropertyRepository defines persistence operations for property listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// ListByOwner returns the owner's properties in creation order.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	// Update applies patch to the property only if its stored owner_id and
	// version still match the given values. A document that no longer matches
	// (lost race) yields domain.ErrConflict.
	Update(ctx context.Context, id, ownerID string, version int64, patch domain.PropertyPatch) (*domain.Property, error)
	// Delete removes the property only if its stored owner_id matches.
	Delete(ctx context.Context, id, ownerID string) error
}
