package services

import (
	"testing"

	"github.com/skamga/accounts-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreateHashesPassword(t *testing.T) {
	users := NewUserService(newTestDB(t))

	user := createTestUser(t, users, "Jane.Doe@Example.COM", false)

	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.NotEqual(t, "secret12", user.Password)
	assert.True(t, user.Active)
	assert.False(t, user.Admin)

	assert.True(t, users.Verify(user, "secret12"))
	assert.False(t, users.Verify(user, "wrong"))
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	createTestUser(t, users, "a@x.com", false)

	_, err := users.Create(models.User{
		Lastname:   "Roe",
		Firstname:  "Richard",
		Middlename: "P",
		Email:      "A@X.com", // different case, same address
	}, "another-pass")
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserServiceFindByEmailNormalizes(t *testing.T) {
	users := NewUserService(newTestDB(t))
	created := createTestUser(t, users, "a@x.com", false)

	found, err := users.FindByEmail("  A@X.COM ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = users.FindByEmail("missing@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceSetPassword(t *testing.T) {
	users := NewUserService(newTestDB(t))
	user := createTestUser(t, users, "a@x.com", false)

	require.NoError(t, users.SetPassword(user, "new-secret"))

	reloaded, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, users.Verify(reloaded, "new-secret"))
	assert.False(t, users.Verify(reloaded, "secret12"))
}
