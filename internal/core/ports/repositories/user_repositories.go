package repositories

import (
	"context"
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByGUID retrieves a specific non-erased user by GUID.
	FindUserByGUID(ctx context.Context, guid string) (*domain.User, error)

	// FindUserByEmail retrieves a specific non-erased user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates a user's editable profile fields (name, bio, picture).
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserBalanceWriter defines the balance mutations used by the donation workflow.
// Both operations are single atomic statements on the user row; DecrementBalance
// is conditional on the balance covering the amount, so two concurrent donations
// by the same user cannot both pass the funds check and drive the balance
// negative.
type UserBalanceWriter interface {
	// DecrementBalance subtracts amountCents from the user's balance and returns
	// the updated user. It returns apperrors.ErrInsufficientFunds when the
	// balance cannot cover the amount, and apperrors.ErrNotFound when no such
	// user exists.
	DecrementBalance(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error)

	// IncrementBalance adds amountCents to the user's balance and returns the
	// updated user.
	IncrementBalance(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error)
}

// UserListAppender defines the append-only list mutations on a user row.
type UserListAppender interface {
	// AppendDonation appends a donation GUID to the user's donations list.
	AppendDonation(ctx context.Context, userGUID string, donationGUID string, now time.Time) (*domain.User, error)

	// AppendPost appends a post GUID to the user's posts list.
	AppendPost(ctx context.Context, userGUID string, postGUID string, now time.Time) (*domain.User, error)
}

// UserLifecycleManager defines operations for managing user lifecycle.
type UserLifecycleManager interface {
	// MarkUserErased soft-erases a user; the row is kept for reference integrity.
	MarkUserErased(ctx context.Context, userGUID string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserBalanceWriter
	UserListAppender
	UserLifecycleManager
}
