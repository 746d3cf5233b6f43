package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unistay/rental-platform/internal/core/domain"
	"github.com/unistay/rental-platform/internal/core/ports"
)

// BookingHandler handles HTTP requests for the booking lifecycle.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings. The student id is always the token
// subject.
//
// @Summary      Create a booking request
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		StudentID:  actor.ID,
		PropertyID: req.PropertyID,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// ListMine handles GET /api/bookings — the student's own bookings.
//
// @Summary      List the authenticated student's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListForStudent(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Transition handles PATCH /api/bookings/:bookingId/status. Who may apply
// which transition is decided by the service against the transition table;
// the route itself is open to any authenticated role.
//
// @Summary      Transition a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId  path      string                    true  "Booking id"
// @Param        body       body      transitionBookingRequest  true  "Target status"
// @Success      200        {object}  bookingResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /api/bookings/{bookingId}/status [patch]
func (h *BookingHandler) Transition(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req transitionBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Transition(c.Request().Context(), c.Param("bookingId"), actor, domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// ListForProperty handles GET /api/owner/:ownerId/properties/:propertyId/bookings.
//
// @Summary      List booking requests for an owned property
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId     path      string  true  "Owner id (must match token subject)"
// @Param        propertyId  path      string  true  "Property id"
// @Success      200         {array}   bookingResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/owner/{ownerId}/properties/{propertyId}/bookings [get]
func (h *BookingHandler) ListForProperty(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := requireSelf(actor, c.Param("ownerId")); err != nil {
		return err
	}

	bookings, err := h.service.ListForProperty(c.Request().Context(), c.Param("propertyId"), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		StudentID:  b.StudentID,
		PropertyID: b.PropertyID,
		DateFrom:   b.DateFrom,
		DateTo:     b.DateTo,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBookingResponses(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}
