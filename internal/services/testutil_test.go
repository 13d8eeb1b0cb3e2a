package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/skamga/accounts-api/internal/config"
	"github.com/skamga/accounts-api/internal/mailer"
	"github.com/skamga/accounts-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.PasswordReset{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AuthTokenTTL:  0,
		ResetTokenTTL: 10 * time.Minute,
	}
}

// -------- test fakes --------

type sentMail struct {
	To       string
	Template mailer.Template
	Data     map[string]string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to string, tmpl mailer.Template, data map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Template: tmpl, Data: data})
	return nil
}

type fakeImageStore struct {
	nextRef string
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeImageStore) Save(_ context.Context, raw []byte, originalName string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	ref := f.nextRef
	if ref == "" {
		ref = fmt.Sprintf("img-%d_%s", len(f.saved), originalName)
	}
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeImageStore) Delete(_ context.Context, ref string) error {
	f.deleted = append(f.deleted, ref)
	return nil
}

func createTestUser(t *testing.T, users *UserService, email string, admin bool) *models.User {
	t.Helper()

	user, err := users.Create(models.User{
		Lastname:   "Doe",
		Firstname:  "Jane",
		Middlename: "Q",
		Email:      email,
	}, "secret12")
	require.NoError(t, err)

	if admin {
		require.NoError(t, users.db.Model(user).Update("admin", true).Error)
		user.Admin = true
	}
	return user
}
