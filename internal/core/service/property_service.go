package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/unistay/rental-platform/internal/api/metrics"
	"github.com/unistay/rental-platform/internal/core/domain"
	"github.com/unistay/rental-platform/internal/core/ports"
)

// PropertyService implements the ownership-scoped listing operations.
type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

// Create stores a new listing owned by ownerID. ownerID comes from the
// verified token subject; client-supplied owner values are ignored upstream.
func (s *PropertyService) Create(ctx context.Context, ownerID string, input ports.CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	p := &domain.Property{
		OwnerID:       ownerID,
		Title:         input.Title,
		Description:   input.Description,
		Address:       input.Address,
		City:          input.City,
		PricePerMonth: input.PricePerMonth,
		Bedrooms:      input.Bedrooms,
		Amenities:     input.Amenities,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create property")
		return nil, err
	}

	metrics.PropertiesCreatedTotal.Inc()
	s.logger.Info().Str("property_id", p.ID).Str("owner_id", ownerID).Msg("property created")
	return p, nil
}

func (s *PropertyService) List(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *PropertyService) Count(ctx context.Context, ownerID string) (int64, error) {
	return s.repo.CountByOwner(ctx, ownerID)
}

// Update patches a listing after the existence and ownership checks, in that
// order, so a caller can tell "doesn't exist" apart from "isn't yours". The
// write itself is conditioned on the version read here; losing that race
// surfaces domain.ErrConflict and the caller retries.
func (s *PropertyService) Update(ctx context.Context, propertyID, callerID string, patch domain.PropertyPatch) (*domain.Property, error) {
	current, err := s.repo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if current.OwnerID != callerID {
		return nil, domain.ErrNotOwner
	}

	updated, err := s.repo.Update(ctx, propertyID, callerID, current.Version, patch)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Warn().Str("property_id", propertyID).Msg("update lost version race")
		}
		return nil, fmt.Errorf("update property: %w", err)
	}

	return updated, nil
}

// Delete removes a listing using the same existence-then-ownership ordering
// as Update. Deletion is immediate and irreversible.
func (s *PropertyService) Delete(ctx context.Context, propertyID, callerID string) error {
	current, err := s.repo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if current.OwnerID != callerID {
		return domain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, propertyID, callerID); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	s.logger.Info().Str("property_id", propertyID).Str("owner_id", callerID).Msg("property deleted")
	return nil
}
