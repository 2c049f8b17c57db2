package dto

import (
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CreateCharityRequest registers a new charity from an invitation token.
type CreateCharityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCharityRequest defines the data allowed for updating a charity.
type UpdateCharityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CharityResponse is the public view of a charity. DonationTotal is a derived,
// read-time aggregate; it is omitted when the lookup behind it fails.
type CharityResponse struct {
	GUID                 string    `json:"guid"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	Users                []string  `json:"users"`
	Campaigns            []string  `json:"campaigns"`
	Updates              []string  `json:"updates"`
	Donations            []string  `json:"donations"`
	DonationTotal        *int64    `json:"donationTotal,omitempty"`
	DonationTotalDisplay string    `json:"donationTotalDisplay,omitempty"`
	DateCreated          time.Time `json:"dateCreated"`
	LastModified         time.Time `json:"lastModified"`
}

// ToCharityResponse converts a domain.Charity to its public view without the
// derived fields; the formatter fills those in.
func ToCharityResponse(charity *domain.Charity) CharityResponse {
	return CharityResponse{
		GUID:         charity.GUID,
		Name:         charity.Name,
		Description:  charity.Description,
		Users:        charity.Users,
		Campaigns:    charity.Campaigns,
		Updates:      charity.Updates,
		Donations:    charity.Donations,
		DateCreated:  charity.DateCreated,
		LastModified: charity.LastModified,
	}
}

// ListCharitiesResponse wraps the list of charities.
type ListCharitiesResponse struct {
	Charities []CharityResponse `json:"charities"`
}
