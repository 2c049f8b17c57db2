package models

// Update is the database row shape for a charity update.
type Update struct {
	ObjectFields
	Charity string `db:"charity"`
	Title   string `db:"title"`
	Body    string `db:"body"`
}
