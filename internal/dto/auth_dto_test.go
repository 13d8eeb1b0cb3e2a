package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Lastname:             "Doe",
		Firstname:            "Jane",
		Middlename:           "Q",
		Email:                "a@x.com",
		Password:             "secret12",
		PasswordConfirmation: "secret12",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	require.NoError(t, validRegister().Validate())

	missing := validRegister()
	missing.Lastname = ""
	assert.Error(t, missing.Validate())

	badEmail := validRegister()
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	mismatch := validRegister()
	mismatch.PasswordConfirmation = "different"
	assert.Error(t, mismatch.Validate())
}

func TestChooseNewPasswordRequestValidate(t *testing.T) {
	ok := ChooseNewPasswordRequest{Password: "pw123456", PasswordConfirmation: "pw123456"}
	require.NoError(t, ok.Validate())

	bad := ChooseNewPasswordRequest{Password: "pw123456", PasswordConfirmation: "other"}
	assert.Error(t, bad.Validate())
}

func TestCreateUserRequestPhone(t *testing.T) {
	req := CreateUserRequest{
		Lastname:             "Doe",
		Firstname:            "Jane",
		Middlename:           "Q",
		Email:                "a@x.com",
		Password:             "secret12",
		PasswordConfirmation: "secret12",
	}
	require.NoError(t, req.Validate())

	good := "+1 (555) 123-4567"
	req.Phone = &good
	require.NoError(t, req.Validate())

	bad := "call-me-maybe"
	req.Phone = &bad
	assert.Error(t, req.Validate())

	short := "12345"
	req.Phone = &short
	assert.Error(t, req.Validate())
}

func TestUpdateUserRequestOptionalFields(t *testing.T) {
	// An empty patch is valid; validation only applies to supplied fields.
	require.NoError(t, UpdateUserRequest{}.Validate())

	bad := "nope"
	assert.Error(t, UpdateUserRequest{Email: &bad}.Validate())
}
