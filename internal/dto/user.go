package dto

import (
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// UserResponse is the public view of a user. TotalDonationAmount is a derived,
// read-time field; it is omitted when the lookup behind it fails.
type UserResponse struct {
	GUID                string    `json:"guid"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Bio                 string    `json:"bio,omitempty"`
	Picture             string    `json:"picture,omitempty"`
	CharityUser         bool      `json:"charityUser"`
	Charity             *string   `json:"charity,omitempty"`
	Balance             int64     `json:"balance"`
	BalanceDisplay      string    `json:"balanceDisplay"`
	Posts               []string  `json:"posts"`
	Donations           []string  `json:"donations"`
	TotalDonationAmount *int64    `json:"totalDonationAmount,omitempty"`
	DateCreated         time.Time `json:"dateCreated"`
	LastModified        time.Time `json:"lastModified"`
}

// ToUserResponse converts a domain.User to its public view without the derived
// fields; the formatter fills those in.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		GUID:           user.GUID,
		Email:          user.Email,
		Name:           user.Name,
		Bio:            user.Bio,
		Picture:        user.Picture,
		CharityUser:    user.CharityUser,
		Charity:        user.Charity,
		Balance:        user.Balance,
		BalanceDisplay: CentsDisplay(user.Balance),
		Posts:          user.Posts,
		Donations:      user.Donations,
		DateCreated:    user.DateCreated,
		LastModified:   user.LastModified,
	}
}

// UpdateUserRequest defines the data allowed for updating a user profile.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Bio     *string `json:"bio"`
	Picture *string `json:"picture"`
}

// DepositRequest adds funds to the authenticated user's balance.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
