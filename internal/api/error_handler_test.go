package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/unistay/rental-platform/internal/core/domain"
)

func newErrorContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveError_DomainErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrUserExists, http.StatusBadRequest},
		{domain.ErrPasswordMismatch, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusBadRequest},
		{domain.ErrInvalidDateRange, http.StatusBadRequest},
		{domain.ErrNotOwner, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrPropertyNotFound, http.StatusNotFound},
		{domain.ErrBookingNotFound, http.StatusNotFound},
		{domain.ErrInvalidTransition, http.StatusConflict},
		{domain.ErrDateConflict, http.StatusConflict},
		{domain.ErrConflict, http.StatusConflict},
	}

	log := zerolog.Nop()
	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, msg := resolveError(tc.err, log, newErrorContext(t))
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg != tc.err.Error() {
				t.Fatalf("expected message %q, got %q", tc.err.Error(), msg)
			}
		})
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("transition booking: %w", domain.ErrInvalidTransition)
	code, _ := resolveError(wrapped, zerolog.Nop(), newErrorContext(t))
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped error, got %d", code)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusUnauthorized, "missing token"), zerolog.Nop(), newErrorContext(t))
	if code != http.StatusUnauthorized || msg != "missing token" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestResolveError_UnknownErrorHidesDetails(t *testing.T) {
	code, msg := resolveError(errors.New("mongo: broken pipe"), zerolog.Nop(), newErrorContext(t))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(msg, "mongo") {
		t.Fatalf("internal cause leaked to client: %q", msg)
	}
}

func TestHTTPErrorHandler_WritesEnvelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return domain.ErrBookingNotFound
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}
