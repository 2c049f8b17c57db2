package domain

// Donation is an immutable record of funds moved from a user to a charity.
// Charity is always set; Campaign and Post are set when the donation targeted
// them, and the chain must be consistent: Post's campaign is Campaign, and
// Campaign's charity is Charity. Amount is positive integer cents and equals
// the amount subtracted from the donor's balance exactly.
type Donation struct {
	ObjectFields
	User     string  `json:"user"`
	Charity  string  `json:"charity"`
	Campaign *string `json:"campaign,omitempty"`
	Post     *string `json:"post,omitempty"`
	Amount   int64   `json:"amount"`
}
