package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// AccessAuth is the purpose tag of tokens issued at registration and login.
const AccessAuth = "auth"

// Token is one active token of a user.
type Token struct {
	Access string `json:"access" bson:"access"`
	Token  string `json:"token" bson:"token"`
}

// User represents an authenticated user in the system.
// Only the id and the email are ever serialized to API clients.
type User struct {
	ID           string                     `json:"_id" bson:"_id" gorm:"type:char(36);primaryKey"`
	Email        string                     `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string                     `json:"-" bson:"password" gorm:"column:password_hash;size:255;not null"`
	Tokens       datatypes.JSONSlice[Token] `json:"-" bson:"tokens" gorm:"type:json;not null"`
	CreatedAt    time.Time                  `json:"-" bson:"createdAt"`
	UpdatedAt    time.Time                  `json:"-" bson:"updatedAt"`
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AddToken appends a token entry.
func (u *User) AddToken(access, token string) {
	u.Tokens = append(u.Tokens, Token{Access: access, Token: token})
}

// HasToken reports whether the exact token with the given purpose is active.
func (u *User) HasToken(access, token string) bool {
	for _, t := range u.Tokens {
		if t.Access == access && t.Token == token {
			return true
		}
	}
	return false
}

// RemoveToken removes every entry matching token. It reports whether anything was removed.
func (u *User) RemoveToken(token string) bool {
	kept := u.Tokens[:0]
	removed := false
	for _, t := range u.Tokens {
		if t.Token == token {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	u.Tokens = kept
	return removed
}

// Clone returns a copy that shares no memory with u.
func (u *User) Clone() *User {
	c := *u
	c.Tokens = append(datatypes.JSONSlice[Token]{}, u.Tokens...)
	return &c
}
