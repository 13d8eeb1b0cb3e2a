package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/skamga/accounts-api/internal/dto"
	"github.com/skamga/accounts-api/internal/models"
	"github.com/skamga/accounts-api/internal/services"
)

const actorKey = "actor"

// TokenProtected resolves the bearer token to its user and stores the actor
// in context locals. Requests without a valid token never reach the handler.
func TokenProtected(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c)
		}

		actor, err := tokens.Authenticate(token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// GetActor returns the authenticated user placed by TokenProtected, or nil
// on an unauthenticated route.
func GetActor(c *fiber.Ctx) *models.User {
	actor, _ := c.Locals(actorKey).(*models.User)
	return actor
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		ErrorCode: dto.CodeAuthentication,
		Message:   "Unauthorized: invalid or expired token",
	})
}
