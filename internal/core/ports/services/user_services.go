package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/core/domain"
	"github.com/opengive/giving_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByGUID retrieves a user by GUID.
	GetUserByGUID(ctx context.Context, guid string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// UpdateUser updates the user's own profile fields.
	UpdateUser(ctx context.Context, userGUID string, req dto.UpdateUserRequest) (*domain.User, error)

	// Deposit adds funds to the user's balance and returns the updated user.
	Deposit(ctx context.Context, userGUID string, amountCents int64) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// EraseUser soft-erases a user.
	EraseUser(ctx context.Context, userGUID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
