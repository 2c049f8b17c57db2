package domain

import "time"

// CharityToken is an invitation token that gates charity-user registration.
// A token is single use and expires.
type CharityToken struct {
	ObjectFields
	Token      string    `json:"token"`
	Email      string    `json:"email"`
	Expiration time.Time `json:"expiration"`
	Used       bool      `json:"used"`
	UsedBy     *string   `json:"usedBy,omitempty"`
}

// Valid reports whether the token can still be redeemed at the given time.
func (t *CharityToken) Valid(now time.Time) bool {
	return !t.Used && now.Before(t.Expiration)
}
