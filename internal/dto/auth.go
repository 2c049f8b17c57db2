package dto

// RegisterRequest creates a new user account. CharityToken, when present, must
// be a valid unused invitation token and marks the account as charity staff.
type RegisterRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Name         string  `json:"name" binding:"required"`
	Bio          string  `json:"bio"`
	Picture      string  `json:"picture"`
	CharityToken *string `json:"charityToken"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a signed token and the authenticated user's view.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
