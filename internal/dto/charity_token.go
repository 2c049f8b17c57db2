package dto

import (
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CreateCharityTokenRequest issues a new charity invitation token.
type CreateCharityTokenRequest struct {
	Email      string `json:"email" binding:"required,email"`
	ExpiryDays int    `json:"expiryDays" binding:"omitempty,gt=0"`
}

// CharityTokenResponse is the public view of an invitation token.
type CharityTokenResponse struct {
	GUID        string    `json:"guid"`
	Token       string    `json:"token"`
	Email       string    `json:"email"`
	Expiration  time.Time `json:"expiration"`
	Used        bool      `json:"used"`
	UsedBy      *string   `json:"usedBy,omitempty"`
	DateCreated time.Time `json:"dateCreated"`
}

// ToCharityTokenResponse converts a domain.CharityToken to its public view.
func ToCharityTokenResponse(token *domain.CharityToken) CharityTokenResponse {
	return CharityTokenResponse{
		GUID:        token.GUID,
		Token:       token.Token,
		Email:       token.Email,
		Expiration:  token.Expiration,
		Used:        token.Used,
		UsedBy:      token.UsedBy,
		DateCreated: token.DateCreated,
	}
}
