package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/skamga/accounts-api/internal/config"
	"github.com/skamga/accounts-api/internal/models"
	"gorm.io/gorm"
)

var ErrTokenInvalid = errors.New("invalid or expired token")

// TokenService mints and revokes opaque bearer tokens. Tokens carry 256 bits
// of randomness and are stored SHA-256 hashed; the plaintext never persists.
type TokenService struct {
	db  *gorm.DB
	ttl time.Duration // zero means tokens never expire
	now func() time.Time
}

func NewTokenService(db *gorm.DB, cfg *config.Config) *TokenService {
	return &TokenService{db: db, ttl: cfg.AuthTokenTTL, now: time.Now}
}

// Issue generates a fresh token bound to the user and returns the plaintext.
// The binding is committed before returning, so a concurrent Authenticate
// with the returned token observes it.
func (s *TokenService) Issue(user *models.User) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	plaintext := base64.URLEncoding.EncodeToString(raw)

	record := models.AuthToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(plaintext),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return plaintext, nil
}

// Authenticate resolves a presented token to its user. Expired bindings (only
// possible when a TTL is configured) are deleted on sight.
func (s *TokenService) Authenticate(plaintext string) (*models.User, error) {
	var record models.AuthToken
	if err := s.db.Where("token_hash = ?", hashToken(plaintext)).First(&record).Error; err != nil {
		return nil, ErrTokenInvalid
	}

	if s.ttl > 0 && !s.now().Before(record.CreatedAt.Add(s.ttl)) {
		if err := s.db.Delete(&record).Error; err != nil {
			slog.Error("failed to purge expired token", "token_id", record.ID.String(), "error", err)
		}
		return nil, ErrTokenInvalid
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", record.UserID).Error; err != nil {
		return nil, ErrTokenInvalid
	}
	return &user, nil
}

// RevokeAll deletes every token bound to the user, ending all of their
// sessions at once.
func (s *TokenService) RevokeAll(userID uuid.UUID) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error; err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
