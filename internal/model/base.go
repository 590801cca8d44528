package model

import "github.com/google/uuid"

// NewID returns a fresh opaque record id (uuid v4 string).
func NewID() string {
	return uuid.NewString()
}
