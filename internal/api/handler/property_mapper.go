package handler

import (
	"github.com/unistay/rental-platform/internal/core/domain"
	"github.com/unistay/rental-platform/internal/core/ports"
)

func toCreatePropertyInput(req createPropertyRequest) ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		PricePerMonth: req.PricePerMonth,
		Bedrooms:      req.Bedrooms,
		Amenities:     req.Amenities,
	}
}

func toPropertyPatch(req updatePropertyRequest) domain.PropertyPatch {
	return domain.PropertyPatch{
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		PricePerMonth: req.PricePerMonth,
		Bedrooms:      req.Bedrooms,
		Amenities:     req.Amenities,
	}
}

func toPropertyResponse(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Title:         p.Title,
		Description:   p.Description,
		Address:       p.Address,
		City:          p.City,
		PricePerMonth: p.PricePerMonth,
		Bedrooms:      p.Bedrooms,
		Amenities:     p.Amenities,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPropertyResponses(properties []*domain.Property) []propertyResponse {
	out := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}
