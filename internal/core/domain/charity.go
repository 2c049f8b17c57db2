package domain

// Charity represents a registered charity organisation.
type Charity struct {
	ObjectFields
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CharityToken string   `json:"charityToken"`
	Users        []string `json:"users"`
	Campaigns    []string `json:"campaigns"`
	Updates      []string `json:"updates"`
	Donations    []string `json:"donations"`
}
