package models

import "time"

// Identity is the user session the uploader acts as. Provider is one of
// common.AnonymousProvider or common.CustomTokenProvider.
type Identity struct {
	UserID    string
	Provider  string
	Anonymous bool
	CreatedAt time.Time
}
