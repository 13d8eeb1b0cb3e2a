package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/skamga/accounts-api/internal/config"
	"github.com/skamga/accounts-api/internal/mailer"
	"github.com/skamga/accounts-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidResetToken = errors.New("invalid reset token")

const mailTimeout = 10 * time.Second

// ResetService owns the password-reset ticket lifecycle: one ticket per email,
// overwritten in place on repeat requests, consumed on confirmation and purged
// when presented after expiry.
type ResetService struct {
	db    *gorm.DB
	users *UserService
	mail  mailer.Mailer
	ttl   time.Duration
	now   func() time.Time
}

func NewResetService(db *gorm.DB, users *UserService, mail mailer.Mailer, cfg *config.Config) *ResetService {
	return &ResetService{
		db:    db,
		users: users,
		mail:  mail,
		ttl:   cfg.ResetTokenTTL,
		now:   time.Now,
	}
}

// RequestReset creates or refreshes the ticket for the email and dispatches
// the reset mail. The ticket is committed before the mail goes out; a send
// failure is reported but never fails the request.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}

	token, err := randomResetToken()
	if err != nil {
		return err
	}

	ticket := models.PasswordReset{
		Email:     user.Email,
		Token:     token,
		ExpiresAt: s.now().Add(s.ttl),
	}
	// Upsert keyed on email: two simultaneous requests for the same address
	// end with a single row, last writer wins.
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "updated_at"}),
	}).Create(&ticket).Error
	if err != nil {
		return fmt.Errorf("failed to store reset ticket: %w", err)
	}

	s.sendMail(ctx, user, mailer.TemplateResetPassword, map[string]string{
		"Firstname": user.Firstname,
		"Token":     token,
	})
	return nil
}

// Confirm consumes the ticket identified by token and overwrites the user's
// password. Unknown and expired tokens fail identically so a caller cannot
// tell which case occurred; an expired ticket is deleted as a side effect.
func (s *ResetService) Confirm(ctx context.Context, token string, newPassword string) error {
	var ticket models.PasswordReset
	if err := s.db.Where("token = ?", token).First(&ticket).Error; err != nil {
		return ErrInvalidResetToken
	}

	// Inclusive boundary: a ticket presented exactly at its expiry is stale.
	if !ticket.ExpiresAt.After(s.now()) {
		if err := s.db.Delete(&ticket).Error; err != nil {
			slog.Error("failed to purge expired reset ticket", "email", ticket.Email, "error", err)
		}
		return ErrInvalidResetToken
	}

	user, err := s.users.FindByEmail(ticket.Email)
	if err != nil {
		return ErrInvalidResetToken
	}

	if err := s.users.SetPassword(user, newPassword); err != nil {
		return err
	}

	if err := s.db.Delete(&ticket).Error; err != nil {
		return fmt.Errorf("failed to consume reset ticket: %w", err)
	}

	s.sendMail(ctx, user, mailer.TemplatePasswordUpdated, map[string]string{
		"Firstname": user.Firstname,
	})
	return nil
}

func (s *ResetService) sendMail(ctx context.Context, user *models.User, tmpl mailer.Template, data map[string]string) {
	mailCtx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()

	if err := s.mail.Send(mailCtx, user.Email, tmpl, data); err != nil {
		slog.Error("failed to send mail", "template", string(tmpl), "user_id", user.ID.String(), "error", err)
		sentry.CaptureException(err)
	}
}

// randomResetToken returns 40 random bytes base64url-encoded, 54 characters.
func randomResetToken() (string, error) {
	raw := make([]byte, 40)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
