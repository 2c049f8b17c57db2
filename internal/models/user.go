package models

// User is the database row shape for a platform user.
// Balance is integer cents; the users table carries a CHECK (balance >= 0).
type User struct {
	ObjectFields
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Name         string   `db:"name"`
	Bio          string   `db:"bio"`
	Picture      string   `db:"picture"`
	CharityUser  bool     `db:"charity_user"`
	Charity      *string  `db:"charity"`
	Balance      int64    `db:"balance"`
	Posts        []string `db:"posts"`
	Donations    []string `db:"donations"`
}
