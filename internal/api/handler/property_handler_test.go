package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/unistay/rental-platform/internal/core/domain"
	"github.com/unistay/rental-platform/internal/core/ports"
)

type stubPropertyService struct {
	createFn func(ctx context.Context, ownerID string, input ports.CreatePropertyInput) (*domain.Property, error)
	listFn   func(ctx context.Context, ownerID string) ([]*domain.Property, error)
	updateFn func(ctx context.Context, propertyID, callerID string, patch domain.PropertyPatch) (*domain.Property, error)
	deleteFn func(ctx context.Context, propertyID, callerID string) error
	countFn  func(ctx context.Context, ownerID string) (int64, error)
}

func (s *stubPropertyService) Create(ctx context.Context, ownerID string, input ports.CreatePropertyInput) (*domain.Property, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubPropertyService) List(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubPropertyService) Count(ctx context.Context, ownerID string) (int64, error) {
	return s.countFn(ctx, ownerID)
}

func (s *stubPropertyService) Update(ctx context.Context, propertyID, callerID string, patch domain.PropertyPatch) (*domain.Property, error) {
	return s.updateFn(ctx, propertyID, callerID, patch)
}

func (s *stubPropertyService) Delete(ctx context.Context, propertyID, callerID string) error {
	return s.deleteFn(ctx, propertyID, callerID)
}

// newOwnerContext builds an echo context with auth claims already injected,
// as the Auth middleware would have done.
func newOwnerContext(e *echo.Echo, method, target, body, userID, pathOwnerID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", domain.RoleOwner)
	c.SetParamNames("ownerId")
	c.SetParamValues(pathOwnerID)
	return c, rec
}

const createPropertyBody = `{"title":"Flat near campus","address":"12 College Rd","city":"Leeds","price_per_month":650,"bedrooms":2}`

func TestPropertyHandler_Create_ForcesTokenOwner(t *testing.T) {
	e := newTestEcho()
	stub := &stubPropertyService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreatePropertyInput) (*domain.Property, error) {
			if ownerID != "owner_1" {
				t.Fatalf("expected owner from token, got %s", ownerID)
			}
			return &domain.Property{ID: "p1", OwnerID: ownerID, Title: input.Title}, nil
		},
	}
	handler := NewPropertyHandler(stub)

	c, rec := newOwnerContext(e, http.MethodPost, "/api/owner/owner_1/properties", createPropertyBody, "owner_1", "owner_1")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPropertyHandler_Create_NotSelf(t *testing.T) {
	e := newTestEcho()
	stub := &stubPropertyService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreatePropertyInput) (*domain.Property, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPropertyHandler(stub)

	// A forged path owner is rejected before binding the payload.
	c, _ := newOwnerContext(e, http.MethodPost, "/api/owner/owner_2/properties", createPropertyBody, "owner_1", "owner_2")
	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestPropertyHandler_List_NotSelf(t *testing.T) {
	e := newTestEcho()
	stub := &stubPropertyService{
		listFn: func(ctx context.Context, ownerID string) ([]*domain.Property, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPropertyHandler(stub)

	c, _ := newOwnerContext(e, http.MethodGet, "/api/owner/owner_2/properties", "", "owner_1", "owner_2")
	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestPropertyHandler_Update_PassesThroughDomainError(t *testing.T) {
	e := newTestEcho()
	stub := &stubPropertyService{
		updateFn: func(ctx context.Context, propertyID, callerID string, patch domain.PropertyPatch) (*domain.Property, error) {
			return nil, domain.ErrNotOwner
		},
	}
	handler := NewPropertyHandler(stub)

	c, _ := newOwnerContext(e, http.MethodPut, "/api/owner/owner_1/properties/p9", `{"title":"x"}`, "owner_1", "owner_1")
	c.SetParamNames("ownerId", "propertyId")
	c.SetParamValues("owner_1", "p9")

	if err := handler.Update(c); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestPropertyHandler_Count(t *testing.T) {
	e := newTestEcho()
	stub := &stubPropertyService{
		countFn: func(ctx context.Context, ownerID string) (int64, error) {
			if ownerID != "owner_1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			return 3, nil
		},
	}
	handler := NewPropertyHandler(stub)

	c, rec := newOwnerContext(e, http.MethodGet, "/api/owner/properties/count", "", "owner_1", "")
	if err := handler.Count(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"count":3`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestPropertyHandler_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewPropertyHandler(&stubPropertyService{})

	req := httptest.NewRequest(http.MethodGet, "/api/owner/properties/count", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Count(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
