package repositories

import (
	"context"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// UpdateReader defines read operations for charity updates.
type UpdateReader interface {
	// FindUpdateByGUID retrieves a specific non-erased update by GUID.
	FindUpdateByGUID(ctx context.Context, guid string) (*domain.Update, error)

	// FindUpdatesByCharity retrieves a paginated list of a charity's updates.
	FindUpdatesByCharity(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Update, error)
}

// UpdateWriter defines write operations for charity updates.
type UpdateWriter interface {
	// SaveUpdate persists a new update.
	SaveUpdate(ctx context.Context, update domain.Update) error
}

// UpdateRepositoryFacade combines all update-related repository interfaces.
type UpdateRepositoryFacade interface {
	UpdateReader
	UpdateWriter
}
