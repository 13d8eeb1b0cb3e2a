package services

import (
	"errors"

	"github.com/skamga/accounts-api/internal/models"
)

var (
	ErrUnauthorized = errors.New("unauthorized user")
	ErrAdminOnly    = errors.New("only an admin can change admin or active status")
)

// CanAccess reports whether the actor may view or mutate the target record:
// admins may touch anyone, everyone else only themselves.
func CanAccess(actor, target *models.User) bool {
	return actor.Admin || actor.ID == target.ID
}
