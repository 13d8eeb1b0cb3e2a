package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CreateUserRequest is the admin-surface variant of registration; unlike
// /register it also accepts a phone number.
type CreateUserRequest struct {
	Lastname             string  `json:"lastname" form:"lastname"`
	Firstname            string  `json:"firstname" form:"firstname"`
	Middlename           string  `json:"middlename" form:"middlename"`
	Email                string  `json:"email" form:"email"`
	Phone                *string `json:"phone" form:"phone"`
	Password             string  `json:"password" form:"password"`
	PasswordConfirmation string  `json:"password_confirmation" form:"password_confirmation"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Lastname, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Firstname, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Middlename, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&r.Phone, validation.Length(10, 30), validation.Match(phoneRe)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.PasswordConfirmation, validation.Required, validation.By(stringEquals(r.Password, "password confirmation does not match"))),
	)
}

// UpdateUserRequest carries patch semantics: nil means "leave unchanged",
// a non-nil pointer means "set to this value". Admin and Active may only be
// applied when the acting user is an admin.
type UpdateUserRequest struct {
	Lastname   *string `json:"lastname" form:"lastname"`
	Firstname  *string `json:"firstname" form:"firstname"`
	Middlename *string `json:"middlename" form:"middlename"`
	Email      *string `json:"email" form:"email"`
	Phone      *string `json:"phone" form:"phone"`
	Admin      *bool   `json:"admin" form:"admin"`
	Active     *bool   `json:"active" form:"active"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Lastname, validation.Length(1, 255)),
		validation.Field(&r.Firstname, validation.Length(1, 255)),
		validation.Field(&r.Middlename, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Length(3, 255), is.Email),
		validation.Field(&r.Phone, validation.Length(10, 30), validation.Match(phoneRe)),
	)
}
