package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Password holds the bcrypt hash, never plaintext.
// The bcrypt format string carries its own cost tag, so the hashing cost can
// be raised later without invalidating stored hashes.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Lastname   string    `gorm:"not null;size:255" json:"lastname"`
	Firstname  string    `gorm:"not null;size:255" json:"firstname"`
	Middlename string    `gorm:"not null;size:255" json:"middlename"`
	Phone      *string   `gorm:"size:30" json:"phone"`
	Image      *string   `gorm:"size:512" json:"image"`
	Password   string    `gorm:"not null" json:"-"`
	Active     bool      `gorm:"not null;default:true" json:"active"`
	Admin      bool      `gorm:"not null;default:false" json:"admin"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
