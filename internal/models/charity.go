package models

// Charity is the database row shape for a charity.
type Charity struct {
	ObjectFields
	Name         string   `db:"name"`
	Description  string   `db:"description"`
	CharityToken string   `db:"charity_token"`
	Users        []string `db:"users"`
	Campaigns    []string `db:"campaigns"`
	Updates      []string `db:"updates"`
	Donations    []string `db:"donations"`
}
