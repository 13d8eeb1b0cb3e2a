package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/skamga/accounts-api/internal/dto"
)

func validationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
		ErrorCode: dto.CodeValidation,
		Message:   message,
	})
}

func authenticationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		ErrorCode: dto.CodeAuthentication,
		Message:   message,
	})
}

func authorizationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		ErrorCode: dto.CodeUnauthorized,
		Message:   message,
	})
}

func notFoundError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		ErrorCode: dto.CodeNotFound,
		Message:   message,
	})
}

func internalError(c *fiber.Ctx, err error) error {
	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		ErrorCode: dto.CodeServerError,
		Message:   "Internal server error",
	})
}

// ErrorHandler is the app-level fallback for errors no handler mapped,
// including the router's own 404/405. It keeps the error-code envelope
// consistent with the status family.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
		message = e.Message
	}

	// Only expose error details for client errors, never for 5xx.
	if status >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		ErrorCode: errorCodeForStatus(status),
		Message:   message,
	})
}

func errorCodeForStatus(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return dto.CodeNotFound
	case status == fiber.StatusUnauthorized:
		return dto.CodeAuthentication
	case status == fiber.StatusForbidden:
		return dto.CodeUnauthorized
	case status >= 400 && status < 500:
		return dto.CodeValidation
	default:
		return dto.CodeServerError
	}
}
