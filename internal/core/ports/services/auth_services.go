package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/dto"
)

// AuthSvcFacade handles registration and login. Registration optionally
// consumes a charity invitation token, marking the account as charity staff.
type AuthSvcFacade interface {
	// Register creates a new user account and returns it with a signed token.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login authenticates email+password and returns the user with a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}
