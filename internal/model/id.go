package model

import "github.com/google/uuid"

// NewID returns a fresh document or sub-document id.
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether id is well formed. Lookups with a malformed id are
// answered exactly like lookups of a missing document.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
