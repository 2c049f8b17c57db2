package dto

import (
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CreateCampaignRequest creates a new campaign for the caller's charity.
type CreateCampaignRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCampaignRequest defines the data allowed for updating a campaign.
type UpdateCampaignRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CampaignResponse is the public view of a campaign.
type CampaignResponse struct {
	GUID                 string    `json:"guid"`
	Charity              string    `json:"charity"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	Donations            []string  `json:"donations"`
	DonationTotal        *int64    `json:"donationTotal,omitempty"`
	DonationTotalDisplay string    `json:"donationTotalDisplay,omitempty"`
	CharityName          string    `json:"charityName,omitempty"`
	DateCreated          time.Time `json:"dateCreated"`
	LastModified         time.Time `json:"lastModified"`
}

// ToCampaignResponse converts a domain.Campaign to its public view without the
// derived fields; the formatter fills those in.
func ToCampaignResponse(campaign *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		GUID:         campaign.GUID,
		Charity:      campaign.Charity,
		Name:         campaign.Name,
		Description:  campaign.Description,
		Donations:    campaign.Donations,
		DateCreated:  campaign.DateCreated,
		LastModified: campaign.LastModified,
	}
}

// ListCampaignsParams defines query parameters for listing campaigns.
type ListCampaignsParams struct {
	ListParams
	Charity string `form:"charity"`
}

// ListCampaignsResponse wraps the list of campaigns.
type ListCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}
