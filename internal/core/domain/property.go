package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrNotOwner = errors.New("property does not belong to caller")
var ErrConflict = errors.New("concurrent update conflict")

// Property is a rental listing. OwnerID is always the authenticated creator;
// it is never taken from a client-supplied parameter.
type Property struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	OwnerID       string    `json:"owner_id" bson:"owner_id"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Address       string    `json:"address" bson:"address"`
	City          string    `json:"city" bson:"city"`
	PricePerMonth float64   `json:"price_per_month" bson:"price_per_month"`
	Bedrooms      int       `json:"bedrooms" bson:"bedrooms"`
	Amenities     []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	// Version guards read-modify-write updates: every successful mutation
	// increments it, and updates are conditioned on the version they read.
	Version   int64     `json:"-" bson:"version"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// PropertyPatch carries the mutable listing fields for an update. Nil fields
// are left untouched.
type PropertyPatch struct {
	Title         *string
	Description   *string
	Address       *string
	City          *string
	PricePerMonth *float64
	Bedrooms      *int
	Amenities     []string
}
