package handler

import "time"

type createPropertyRequest struct {
	Title         string   `json:"title"           validate:"required"`
	Description   string   `json:"description"`
	Address       string   `json:"address"         validate:"required"`
	City          string   `json:"city"            validate:"required"`
	PricePerMonth float64  `json:"price_per_month" validate:"required,gt=0"`
	Bedrooms      int      `json:"bedrooms"        validate:"required,gte=1"`
	Amenities     []string `json:"amenities"`
}

// updatePropertyRequest carries a partial patch: nil fields stay untouched.
type updatePropertyRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Address       *string  `json:"address,omitempty"`
	City          *string  `json:"city,omitempty"`
	PricePerMonth *float64 `json:"price_per_month,omitempty" validate:"omitempty,gt=0"`
	Bedrooms      *int     `json:"bedrooms,omitempty"        validate:"omitempty,gte=1"`
	Amenities     []string `json:"amenities,omitempty"`
}

// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type propertyResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	PricePerMonth float64   `json:"price_per_month"`
	Bedrooms      int       `json:"bedrooms"`
	Amenities     []string  `json:"amenities,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type propertyCountResponse struct {
	Count int64 `json:"count"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
