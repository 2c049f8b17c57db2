package models

// Post is the database row shape for a post.
type Post struct {
	ObjectFields
	User           string   `db:"user_guid"`
	Campaign       string   `db:"campaign"`
	Charity        string   `db:"charity"`
	Image          string   `db:"image"`
	ShareableImage string   `db:"shareable_image"`
	Caption        string   `db:"caption"`
	Donations      []string `db:"donations"`
}
