package domain

import (
	"errors"
	"time"
)

const (
	RoleStudent = "student"
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
)

var ErrUserExists = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordMismatch = errors.New("passwords do not match")

// ValidRole reports whether role is one of the roles accepted at signup.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleOwner || role == RoleAdmin
}

// User models a registered identity. The password hash never leaves the
// process; the json tag guarantees it is dropped from every response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
