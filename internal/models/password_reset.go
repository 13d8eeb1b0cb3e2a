package models

import "time"

// PasswordReset is a single-use, time-boxed reset ticket. Email is the unique
// key: a repeated reset request overwrites the existing row's token and
// expiry instead of creating a second ticket.
type PasswordReset struct {
	Email     string    `gorm:"primaryKey;size:255" json:"email"`
	Token     string    `gorm:"uniqueIndex;not null;size:80" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
