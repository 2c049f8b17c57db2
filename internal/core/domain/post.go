package domain

// Post represents a user post supporting a campaign. User, Campaign and
// Charity references are immutable after creation.
type Post struct {
	ObjectFields
	User           string   `json:"user"`
	Campaign       string   `json:"campaign"`
	Charity        string   `json:"charity"`
	Image          string   `json:"image"`
	ShareableImage string   `json:"shareableImage"`
	Caption        string   `json:"caption"`
	Donations      []string `json:"donations"`
}
