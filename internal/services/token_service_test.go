package services

import (
	"testing"
	"time"

	"github.com/skamga/accounts-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceIssueAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	tokens := NewTokenService(db, testConfig())

	user := createTestUser(t, users, "a@x.com", false)

	token, err := tokens.Issue(user)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(token), 43) // 32 random bytes, base64

	resolved, err := tokens.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	// Only the hash is at rest.
	var stored models.AuthToken
	require.NoError(t, db.First(&stored).Error)
	assert.NotEqual(t, token, stored.TokenHash)

	_, err = tokens.Authenticate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenServiceRevokeAll(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	tokens := NewTokenService(db, testConfig())

	user := createTestUser(t, users, "a@x.com", false)
	other := createTestUser(t, users, "b@x.com", false)

	first, err := tokens.Issue(user)
	require.NoError(t, err)
	second, err := tokens.Issue(user)
	require.NoError(t, err)
	otherToken, err := tokens.Issue(other)
	require.NoError(t, err)

	require.NoError(t, tokens.RevokeAll(user.ID))

	_, err = tokens.Authenticate(first)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = tokens.Authenticate(second)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Another user's sessions are untouched.
	resolved, err := tokens.Authenticate(otherToken)
	require.NoError(t, err)
	assert.Equal(t, other.ID, resolved.ID)
}

func TestTokenServiceTTL(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	tokens := NewTokenService(db, testConfig())
	tokens.ttl = time.Hour

	user := createTestUser(t, users, "a@x.com", false)
	token, err := tokens.Issue(user)
	require.NoError(t, err)

	var stored models.AuthToken
	require.NoError(t, db.First(&stored).Error)

	// Just inside the window.
	tokens.now = func() time.Time { return stored.CreatedAt.Add(time.Hour - time.Second) }
	_, err = tokens.Authenticate(token)
	require.NoError(t, err)

	// Exactly at expiry counts as expired, and the binding is purged.
	tokens.now = func() time.Time { return stored.CreatedAt.Add(time.Hour) }
	_, err = tokens.Authenticate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	var count int64
	require.NoError(t, db.Model(&models.AuthToken{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
