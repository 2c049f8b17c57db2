package repositories

import (
	"context"
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CharityReader defines read operations for charity data.
type CharityReader interface {
	// FindCharityByGUID retrieves a specific non-erased charity by GUID.
	FindCharityByGUID(ctx context.Context, guid string) (*domain.Charity, error)

	// FindCharities retrieves a paginated list of charities.
	FindCharities(ctx context.Context, limit int, offset int) ([]domain.Charity, error)
}

// CharityWriter defines write operations for charity data.
type CharityWriter interface {
	// SaveCharity persists a new charity.
	SaveCharity(ctx context.Context, charity domain.Charity) error

	// UpdateCharity updates a charity's editable fields (name, description).
	UpdateCharity(ctx context.Context, charity domain.Charity) error
}

// CharityListAppender defines the append-only list mutations on a charity row.
type CharityListAppender interface {
	AppendUser(ctx context.Context, charityGUID string, userGUID string, now time.Time) (*domain.Charity, error)
	AppendCampaign(ctx context.Context, charityGUID string, campaignGUID string, now time.Time) (*domain.Charity, error)
	AppendUpdate(ctx context.Context, charityGUID string, updateGUID string, now time.Time) (*domain.Charity, error)
	AppendDonation(ctx context.Context, charityGUID string, donationGUID string, now time.Time) (*domain.Charity, error)
}

// CharityRepositoryFacade combines all charity-related repository interfaces.
type CharityRepositoryFacade interface {
	CharityReader
	CharityWriter
	CharityListAppender
}
