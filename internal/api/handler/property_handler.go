package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unistay/rental-platform/internal/core/ports"
)

// PropertyHandler handles HTTP requests for owner property management.
// Every route is behind Auth + RBAC(owner); on top of that the handler
// rejects a path owner that is not the token subject before the service
// re-verifies the stored owner.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// Count handles GET /api/owner/properties/count.
//
// @Summary      Count properties owned by the authenticated owner
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  propertyCountResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/owner/properties/count [get]
func (h *PropertyHandler) Count(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	count, err := h.service.Count(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, propertyCountResponse{Count: count})
}

// List handles GET /api/owner/:ownerId/properties.
//
// @Summary      List properties owned by an owner
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId  path      string  true  "Owner id (must match token subject)"
// @Success      200      {array}   propertyResponse
// @Failure      403      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /api/owner/{ownerId}/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := requireSelf(actor, c.Param("ownerId")); err != nil {
		return err
	}

	properties, err := h.service.List(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponses(properties))
}

// Create handles POST /api/owner/:ownerId/properties. The stored owner is
// always the token subject, regardless of any client-supplied value.
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId  path      string                 true  "Owner id (must match token subject)"
// @Param        body     body      createPropertyRequest  true  "Listing details"
// @Success      201      {object}  propertyResponse
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /api/owner/{ownerId}/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := requireSelf(actor, c.Param("ownerId")); err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), actor.ID, toCreatePropertyInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPropertyResponse(property))
}

// Update handles PUT /api/owner/:ownerId/properties/:propertyId.
//
// @Summary      Update a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId     path      string                 true  "Owner id (must match token subject)"
// @Param        propertyId  path      string                 true  "Property id"
// @Param        body        body      updatePropertyRequest  true  "Fields to change"
// @Success      200         {object}  propertyResponse
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /api/owner/{ownerId}/properties/{propertyId} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := requireSelf(actor, c.Param("ownerId")); err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("propertyId"), actor.ID, toPropertyPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Delete handles DELETE /api/owner/:ownerId/properties/:propertyId.
//
// @Summary      Delete a property listing
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId     path      string  true  "Owner id (must match token subject)"
// @Param        propertyId  path      string  true  "Property id"
// @Success      200         {object}  deletedResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/owner/{ownerId}/properties/{propertyId} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := requireSelf(actor, c.Param("ownerId")); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("propertyId"), actor.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "property deleted successfully"})
}
