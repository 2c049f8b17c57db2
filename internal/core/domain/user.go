package domain

// User represents a platform user. Charity is set for charity-staff users and
// references the charity they administer. Balance is integer cents and must
// never go negative; the repository enforces this on decrement.
type User struct {
	ObjectFields
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Bio          string   `json:"bio"`
	Picture      string   `json:"picture"`
	CharityUser  bool     `json:"charityUser"`
	Charity      *string  `json:"charity,omitempty"`
	Balance      int64    `json:"balance"`
	Posts        []string `json:"posts"`
	Donations    []string `json:"donations"`
}

// AdministersCharity reports whether this user already belongs to a charity.
func (u *User) AdministersCharity() bool {
	return u.Charity != nil && *u.Charity != ""
}
