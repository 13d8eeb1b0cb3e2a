package dto

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var phoneRe = regexp.MustCompile(`^[0-9\s\-\+\(\)]*$`)

type RegisterRequest struct {
	Lastname             string `json:"lastname" form:"lastname"`
	Firstname            string `json:"firstname" form:"firstname"`
	Middlename           string `json:"middlename" form:"middlename"`
	Email                string `json:"email" form:"email"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Lastname, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Firstname, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Middlename, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.PasswordConfirmation, validation.Required, validation.By(stringEquals(r.Password, "password confirmation does not match"))),
	)
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type ResetPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ChooseNewPasswordRequest struct {
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

func (r ChooseNewPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.PasswordConfirmation, validation.Required, validation.By(stringEquals(r.Password, "password confirmation does not match"))),
	)
}

func stringEquals(expected, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(msg)
		}
		return nil
	}
}
