package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// ctxActor extracts the authenticated actor injected by the Auth middleware
// and performs a fast-fail check before any service call: both claims must
// be present (presence proves the middleware ran).
func ctxActor(c echo.Context) (domain.Actor, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Actor{ID: id, Role: role}, nil
}

// requireSelf rejects requests whose path-declared owner differs from the
// token subject. This is the first half of the double ownership check; the
// second half compares against the resource's stored owner in the service.
func requireSelf(actor domain.Actor, pathOwnerID string) error {
	if pathOwnerID != actor.ID {
		return echo.NewHTTPError(http.StatusForbidden, "you can only manage your own resources")
	}
	return nil
}
