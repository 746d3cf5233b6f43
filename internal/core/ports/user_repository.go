package ports

import (
	"context"

	"github.com/unistay/rental-platform/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
