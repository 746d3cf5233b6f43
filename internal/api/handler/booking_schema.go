package handler

import "time"

type createBookingRequest struct {
	PropertyID string    `json:"property_id" validate:"required"`
	DateFrom   time.Time `json:"date_from"   validate:"required"`
	DateTo     time.Time `json:"date_to"     validate:"required"`
}

type transitionBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

type bookingResponse struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	PropertyID string    `json:"property_id"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
