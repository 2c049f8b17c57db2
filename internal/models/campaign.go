package models

// Campaign is the database row shape for a campaign.
type Campaign struct {
	ObjectFields
	Charity     string   `db:"charity"`
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Donations   []string `db:"donations"`
}
