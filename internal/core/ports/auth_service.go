package ports

import (
	"context"

	"github.com/billboardbooker/marketplace/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService manages login, registration, logout and the current session.
// Login and Register return a signed bearer token alongside the session for
// the HTTP layer; the persisted session remains the core's source of truth.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	Register(ctx context.Context, in RegisterInput) (string, *domain.Session, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*domain.Session, error)
}
