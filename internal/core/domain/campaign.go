package domain

// Campaign represents a fundraising campaign run by a charity.
// Charity is immutable after creation.
type Campaign struct {
	ObjectFields
	Charity     string   `json:"charity"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Donations   []string `json:"donations"`
}
