package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken binds an opaque bearer token to a user. Only the SHA-256 of the
// token is stored; the plaintext is returned exactly once at issue time.
// A user may hold many tokens at once (one per session/device).
type AuthToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
