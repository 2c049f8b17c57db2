package models

import "time"

// CharityToken is the database row shape for an invitation token.
type CharityToken struct {
	ObjectFields
	Token      string    `db:"token"`
	Email      string    `db:"email"`
	Expiration time.Time `db:"expiration"`
	Used       bool      `db:"used"`
	UsedBy     *string   `db:"used_by"`
}
