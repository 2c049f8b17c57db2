package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/dto"
)

// DonationSvcFacade is the donation workflow engine. Donate runs the strict
// sequential pipeline: load user, funds check, target resolution, atomic
// balance decrement, donation insert, fan-out of the donation GUID to the
// related entities' donations lists. It is deliberately not idempotent:
// calling it twice with identical parameters creates two donations and two
// decrements.
type DonationSvcFacade interface {
	// Donate moves amountCents from the user to the resolved target chain and
	// returns every entity it touched, formatted.
	Donate(ctx context.Context, userGUID string, req dto.CreateDonationRequest) (*dto.DonationResult, error)

	// GetDonation retrieves a single donation in its formatted view.
	GetDonation(ctx context.Context, guid string) (*dto.DonationResponse, error)

	// ListDonations retrieves a filtered, paginated list of donations.
	ListDonations(ctx context.Context, params dto.ListDonationsParams) (*dto.ListDonationsResponse, error)
}
