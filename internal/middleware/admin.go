package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skamga/accounts-api/internal/dto"
)

// AdminRequired gates a route on the actor's admin flag. Must run after
// TokenProtected.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return unauthorized(c)
		}

		if !actor.Admin {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				ErrorCode: dto.CodeUnauthorized,
				Message:   "Unauthorized user",
			})
		}
		return c.Next()
	}
}
