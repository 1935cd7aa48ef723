package documents

import "time"

// Document is one stored JSON value. Identity is (UserID, Key); the row id
// is internal and never exposed.
type Document struct {
	ID        string
	UserID    string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// KeyInfo is the metadata-only listing entry: no value, to keep listings
// small.
type KeyInfo struct {
	Key       string    `json:"key"`
	UpdatedAt time.Time `json:"updated_at"`
}
