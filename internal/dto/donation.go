package dto

import (
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CreateDonationRequest makes a donation to exactly one of post, campaign or
// charity. When more than one is supplied, post wins over campaign over
// charity.
type CreateDonationRequest struct {
	Amount   int64   `json:"amount" binding:"required,gt=0"`
	Post     *string `json:"post"`
	Campaign *string `json:"campaign"`
	Charity  *string `json:"charity"`
}

// DonationResponse is the public view of a donation. The *Name fields are
// derived at read time and omitted when the referenced entity is missing or
// erased.
type DonationResponse struct {
	GUID          string    `json:"guid"`
	User          string    `json:"user"`
	Charity       string    `json:"charity"`
	Campaign      *string   `json:"campaign,omitempty"`
	Post          *string   `json:"post,omitempty"`
	Amount        int64     `json:"amount"`
	AmountDisplay string    `json:"amountDisplay"`
	UserName      string    `json:"userName,omitempty"`
	CharityName   string    `json:"charityName,omitempty"`
	CampaignName  string    `json:"campaignName,omitempty"`
	PostCaption   string    `json:"postCaption,omitempty"`
	DateCreated   time.Time `json:"dateCreated"`
}

// ToDonationResponse converts a domain.Donation to its public view without the
// derived fields; the formatter fills those in.
func ToDonationResponse(donation *domain.Donation) DonationResponse {
	return DonationResponse{
		GUID:          donation.GUID,
		User:          donation.User,
		Charity:       donation.Charity,
		Campaign:      donation.Campaign,
		Post:          donation.Post,
		Amount:        donation.Amount,
		AmountDisplay: CentsDisplay(donation.Amount),
		DateCreated:   donation.DateCreated,
	}
}

// DonationResult is the full set of entities touched by a donate call, each in
// its formatted view, so a caller can render the updated state without further
// round trips.
type DonationResult struct {
	Donation DonationResponse  `json:"donation"`
	User     UserResponse      `json:"user"`
	Post     *PostResponse     `json:"post,omitempty"`
	Campaign *CampaignResponse `json:"campaign,omitempty"`
	Charity  CharityResponse   `json:"charity"`
}

// ListDonationsParams defines query parameters for listing donations.
type ListDonationsParams struct {
	ListParams
	User     *string `form:"user"`
	Charity  *string `form:"charity"`
	Campaign *string `form:"campaign"`
	Post     *string `form:"post"`
}

// ListDonationsResponse wraps the list of donations.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
}
