package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skamga/accounts-api/internal/dto"
	"github.com/skamga/accounts-api/internal/middleware"
	"github.com/skamga/accounts-api/internal/services"
	"github.com/skamga/accounts-api/internal/storage"
)

type UserHandler struct {
	accounts *services.AccountService
}

func NewUserHandler(accounts *services.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Index lists every account. Admin only; the route carries AdminRequired but
// the service gate stays as a backstop.
func (h *UserHandler) Index(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers(middleware.GetActor(c))
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			return authorizationError(c, "Unauthorized user")
		}
		return internalError(c, err)
	}

	return c.JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Data:      users,
	})
}

func (h *UserHandler) Store(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
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

	user, token, err := h.accounts.CreateUser(c.UserContext(), req, image)
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

func (h *UserHandler) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFoundError(c, "User not found")
	}

	user, err := h.accounts.GetUser(middleware.GetActor(c), id)
	if err != nil {
		return h.mapUserError(c, err)
	}

	return c.JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Data:      user,
	})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFoundError(c, "User not found")
	}

	var req dto.UpdateUserRequest
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

	user, err := h.accounts.UpdateUser(c.UserContext(), middleware.GetActor(c), id, req, image)
	if err != nil {
		if errors.Is(err, services.ErrAdminOnly) {
			return authorizationError(c, "Only an admin can set admin or active status")
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return validationError(c, err.Error())
		}
		if errors.Is(err, storage.ErrInvalidImage) {
			return validationError(c, "Uploaded file is not a valid image")
		}
		return h.mapUserError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Data:      user,
	})
}

func (h *UserHandler) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFoundError(c, "User not found")
	}

	if err := h.accounts.DeleteUser(c.UserContext(), middleware.GetActor(c), id); err != nil {
		return h.mapUserError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(dto.SuccessResponse{
		ErrorCode: dto.CodeSuccess,
		Message:   "User deleted successfully",
	})
}

func (h *UserHandler) mapUserError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return notFoundError(c, "User not found")
	}
	if errors.Is(err, services.ErrUnauthorized) {
		return authorizationError(c, "Unauthorized user")
	}
	return internalError(c, err)
}
