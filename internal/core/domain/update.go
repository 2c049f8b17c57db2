package domain

// Update is a news item published by a charity.
type Update struct {
	ObjectFields
	Charity string `json:"charity"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}
