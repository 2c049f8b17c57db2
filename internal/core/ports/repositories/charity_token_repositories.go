package repositories

import (
	"context"
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CharityTokenReader defines read operations for invitation tokens.
type CharityTokenReader interface {
	// FindCharityTokenByCode retrieves a token by its redeemable code.
	FindCharityTokenByCode(ctx context.Context, code string) (*domain.CharityToken, error)

	// FindCharityTokenByGUID retrieves a token by GUID.
	FindCharityTokenByGUID(ctx context.Context, guid string) (*domain.CharityToken, error)
}

// CharityTokenWriter defines write operations for invitation tokens.
type CharityTokenWriter interface {
	// SaveCharityToken persists a new token.
	SaveCharityToken(ctx context.Context, token domain.CharityToken) error

	// MarkCharityTokenUsed flags a token as consumed by the given user.
	MarkCharityTokenUsed(ctx context.Context, guid string, usedBy string, now time.Time) error
}

// CharityTokenRepositoryFacade combines all token-related repository interfaces.
type CharityTokenRepositoryFacade interface {
	CharityTokenReader
	CharityTokenWriter
}
