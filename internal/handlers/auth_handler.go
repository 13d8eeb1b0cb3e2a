package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/skamga/accounts-api/internal/dto"
	"github.com/skamga/accounts-api/internal/middleware"
	"github.com/skamga/accounts-api/internal/services"
	"github.com/skamga/accounts-api/internal/storage"
)

type AuthHandler struct {
	accounts *services.AccountService
	resets   *services.ResetService
}

func NewAuthHandler(accounts *services.AccountService, resets *services.ResetService) *AuthHandler {
	return &AuthHandler{accounts: accounts, resets: resets}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err.Error())
	}

	image, err := formImage(c)
	if err != nil {
		return validationError(c, err.Error())
	}

	user, token, err := h.accounts.Register(c.UserContext(), req, image)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return validationError(c, err.Error())
		}
		if errors.Is(err, storage.ErrInvalidImage) {
			return validationError(c, "Uploaded file is not a valid image")
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Token:     token,
		Data:      user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err.Error())
	}

	user, token, err := h.accounts.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return authenticationError(c, "Invalid username and password")
		}
		if errors.Is(err, services.ErrInactiveAccount) {
			return authenticationError(c, "Inactive account")
		}
		return internalError(c, err)
	}

	return c.JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Token:     token,
		Data:      user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	if err := h.accounts.Logout(actor); err != nil {
		return internalError(c, err)
	}

	return c.JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Message:   "Logged out",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err.Error())
	}

	if err := h.resets.RequestReset(c.UserContext(), req.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFoundError(c, "Email not found")
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Message:   "Reset link has been sent to your email address",
	})
}

func (h *AuthHandler) ChooseNewPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var req dto.ChooseNewPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return validationError(c, err.Error())
	}

	if err := h.resets.Confirm(c.UserContext(), token, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidResetToken) {
			return validationError(c, "Invalid reset token")
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Message:   "Your password has been updated successfully",
	})
}
