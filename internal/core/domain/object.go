package domain

import "time"

// ObjectFields holds the shared identity and lifecycle fields every entity carries.
// GUID is the only stable reference between entities; rows are never physically
// deleted, they are flagged erased so stored GUID references stay resolvable.
type ObjectFields struct {
	GUID         string    `json:"guid"`
	DateCreated  time.Time `json:"dateCreated"`
	LastModified time.Time `json:"lastModified"`
	Erased       bool      `json:"erased"`
}
