package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/skamga/accounts-api/internal/dto"
	"github.com/skamga/accounts-api/internal/models"
	"github.com/skamga/accounts-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username and password")
	ErrInactiveAccount    = errors.New("inactive account")
)

// Upload is an optional image attached to a register/create/update request.
type Upload struct {
	Data []byte
	Name string
}

// AccountService sequences the account flows: registration, login, logout and
// profile CRUD. It owns no state machine of its own; collaborators hold the
// actual records.
type AccountService struct {
	db     *gorm.DB
	users  *UserService
	tokens *TokenService
	images storage.ImageStore
}

func NewAccountService(db *gorm.DB, users *UserService, tokens *TokenService, images storage.ImageStore) *AccountService {
	return &AccountService{db: db, users: users, tokens: tokens, images: images}
}

// Register creates the account and immediately issues a bearer token for it.
func (s *AccountService) Register(ctx context.Context, req dto.RegisterRequest, image *Upload) (*models.User, string, error) {
	profile := models.User{
		Lastname:   req.Lastname,
		Firstname:  req.Firstname,
		Middlename: req.Middlename,
		Email:      req.Email,
	}
	return s.createAccount(ctx, profile, req.Password, image)
}

// CreateUser is the authenticated-surface variant of Register that also
// accepts a phone number.
func (s *AccountService) CreateUser(ctx context.Context, req dto.CreateUserRequest, image *Upload) (*models.User, string, error) {
	profile := models.User{
		Lastname:   req.Lastname,
		Firstname:  req.Firstname,
		Middlename: req.Middlename,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	return s.createAccount(ctx, profile, req.Password, image)
}

func (s *AccountService) createAccount(ctx context.Context, profile models.User, password string, image *Upload) (*models.User, string, error) {
	if image != nil {
		ref, err := s.images.Save(ctx, image.Data, image.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to store image: %w", err)
		}
		profile.Image = &ref
	}

	user, err := s.users.Create(profile, password)
	if err != nil {
		if profile.Image != nil {
			s.deleteImage(ctx, *profile.Image)
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password fail with the same error so account existence does not leak; the
// inactive-account error is distinct, matching the original surface.
func (s *AccountService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.users.Verify(user, password) {
		return nil, "", ErrInvalidCredentials
	}

	if !user.Active {
		return nil, "", ErrInactiveAccount
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes every token the actor holds, not just the presented one.
func (s *AccountService) Logout(actor *models.User) error {
	return s.tokens.RevokeAll(actor.ID)
}

func (s *AccountService) ListUsers(actor *models.User) ([]models.User, error) {
	if !actor.Admin {
		return nil, ErrUnauthorized
	}
	return s.users.List()
}

func (s *AccountService) GetUser(actor *models.User, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, user) {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// UpdateUser applies a partial patch to the target record. Nothing is written
// when any check fails: authorization first, then the admin-only gate on the
// admin/active flags, then email uniqueness.
func (s *AccountService) UpdateUser(ctx context.Context, actor *models.User, id uuid.UUID, req dto.UpdateUserRequest, image *Upload) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, user) {
		return nil, ErrUnauthorized
	}

	if (req.Admin != nil || req.Active != nil) && !actor.Admin {
		return nil, ErrAdminOnly
	}

	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		if email != user.Email {
			if _, err := s.users.FindByEmail(email); err == nil {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Middlename != nil {
		user.Middlename = *req.Middlename
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Admin != nil {
		user.Admin = *req.Admin
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if image != nil {
		ref, err := s.images.Save(ctx, image.Data, image.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		if user.Image != nil {
			s.deleteImage(ctx, *user.Image)
		}
		user.Image = &ref
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the record and releases its stored image.
func (s *AccountService) DeleteUser(ctx context.Context, actor *models.User, id uuid.UUID) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if !CanAccess(actor, user) {
		return ErrUnauthorized
	}

	if user.Image != nil {
		s.deleteImage(ctx, *user.Image)
	}

	if err := s.tokens.RevokeAll(user.ID); err != nil {
		return err
	}

	if err := s.db.Delete(user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *AccountService) deleteImage(ctx context.Context, ref string) {
	if err := s.images.Delete(ctx, ref); err != nil {
		slog.Error("failed to delete stored image", "ref", ref, "error", err)
	}
}
