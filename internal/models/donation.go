package models

// Donation is the database row shape for a donation. Rows are insert-only.
type Donation struct {
	ObjectFields
	User     string  `db:"user_guid"`
	Charity  string  `db:"charity"`
	Campaign *string `db:"campaign"`
	Post     *string `db:"post"`
	Amount   int64   `db:"amount"`
}
