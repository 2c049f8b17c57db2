package dto

import (
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CreatePostRequest creates a post supporting a campaign. The charity is
// derived from the campaign, never supplied by the caller.
type CreatePostRequest struct {
	Campaign       string `json:"campaign" binding:"required"`
	Image          string `json:"image" binding:"required"`
	ShareableImage string `json:"shareableImage" binding:"required"`
	Caption        string `json:"caption"`
}

// UpdatePostRequest defines the data allowed for updating a post.
type UpdatePostRequest struct {
	Caption *string `json:"caption"`
}

// PostResponse is the public view of a post.
type PostResponse struct {
	GUID                 string    `json:"guid"`
	User                 string    `json:"user"`
	Campaign             string    `json:"campaign"`
	Charity              string    `json:"charity"`
	Image                string    `json:"image"`
	ShareableImage       string    `json:"shareableImage"`
	Caption              string    `json:"caption,omitempty"`
	Donations            []string  `json:"donations"`
	DonationTotal        *int64    `json:"donationTotal,omitempty"`
	DonationTotalDisplay string    `json:"donationTotalDisplay,omitempty"`
	UserName             string    `json:"userName,omitempty"`
	CharityName          string    `json:"charityName,omitempty"`
	DateCreated          time.Time `json:"dateCreated"`
	LastModified         time.Time `json:"lastModified"`
}

// ToPostResponse converts a domain.Post to its public view without the derived
// fields; the formatter fills those in.
func ToPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		GUID:           post.GUID,
		User:           post.User,
		Campaign:       post.Campaign,
		Charity:        post.Charity,
		Image:          post.Image,
		ShareableImage: post.ShareableImage,
		Caption:        post.Caption,
		Donations:      post.Donations,
		DateCreated:    post.DateCreated,
		LastModified:   post.LastModified,
	}
}

// ListPostsParams defines query parameters for listing posts.
type ListPostsParams struct {
	ListParams
	User     *string `form:"user"`
	Campaign *string `form:"campaign"`
	Charity  *string `form:"charity"`
}

// ListPostsResponse wraps the list of posts.
type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
}
