package repositories

import (
	"context"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// DonationFilter narrows donation listings and aggregates. Nil fields are not
// applied.
type DonationFilter struct {
	User     *string
	Charity  *string
	Campaign *string
	Post     *string
}

// DonationReader defines read operations for donation data. The donation rows
// are the source of truth for who donated what; the donations lists carried by
// user/post/campaign/charity are a denormalized index over them.
type DonationReader interface {
	// FindDonationByGUID retrieves a specific non-erased donation by GUID.
	FindDonationByGUID(ctx context.Context, guid string) (*domain.Donation, error)

	// FindDonations retrieves a paginated, filtered list of donations.
	FindDonations(ctx context.Context, filter DonationFilter, limit int, offset int) ([]domain.Donation, error)

	// SumAmount totals the amounts of all donations matching the filter.
	SumAmount(ctx context.Context, filter DonationFilter) (int64, error)
}

// DonationWriter defines write operations for donation data. Donations are
// insert-only; no update operation exists.
type DonationWriter interface {
	// SaveDonation persists a new donation record.
	SaveDonation(ctx context.Context, donation domain.Donation) error
}

// DonationRepositoryFacade combines all donation-related repository interfaces.
type DonationRepositoryFacade interface {
	DonationReader
	DonationWriter
}
