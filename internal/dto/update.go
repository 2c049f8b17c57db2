package dto

import (
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CreateUpdateRequest publishes a news item for the caller's charity.
type CreateUpdateRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// UpdateResponse is the public view of a charity update.
type UpdateResponse struct {
	GUID        string    `json:"guid"`
	Charity     string    `json:"charity"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CharityName string    `json:"charityName,omitempty"`
	DateCreated time.Time `json:"dateCreated"`
}

// ToUpdateResponse converts a domain.Update to its public view.
func ToUpdateResponse(update *domain.Update) UpdateResponse {
	return UpdateResponse{
		GUID:        update.GUID,
		Charity:     update.Charity,
		Title:       update.Title,
		Body:        update.Body,
		DateCreated: update.DateCreated,
	}
}

// ListUpdatesParams defines query parameters for listing a charity's updates.
type ListUpdatesParams struct {
	ListParams
	Charity string `form:"charity" binding:"required"`
}

// ListUpdatesResponse wraps the list of updates.
type ListUpdatesResponse struct {
	Updates []UpdateResponse `json:"updates"`
}
