package ports

import (
	"context"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// RegisterInput carries the signup payload after transport-level validation.
type RegisterInput struct {
	Email           string
	Username        string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            string
}

// AuthService implements signup and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
