package models

import "time"

// ObjectFields holds the shared columns every entity table carries.
type ObjectFields struct {
	GUID         string    `db:"guid"`
	DateCreated  time.Time `db:"date_created"`
	LastModified time.Time `db:"last_modified"`
	Erased       bool      `db:"erased"`
}
