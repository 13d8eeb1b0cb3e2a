package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skamga/accounts-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// UserService persists account records and verifies credentials.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// NormalizeEmail is applied before every store or lookup so that email
// comparison is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create hashes the plaintext password and persists the user. The profile's
// Email is normalized; a duplicate email fails with ErrEmailTaken and writes
// nothing.
func (s *UserService) Create(profile models.User, plaintext string) (*models.User, error) {
	profile.Email = NormalizeEmail(profile.Email)

	var existing models.User
	if err := s.db.Where("email = ?", profile.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile.ID = uuid.New()
	profile.Password = string(hash)
	profile.Active = true

	if err := s.db.Create(&profile).Error; err != nil {
		// Unique index backstop for a concurrent create with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &profile, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (s *UserService) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Verify reports whether the plaintext matches the stored hash. bcrypt's
// comparison is constant-time over the hash output.
func (s *UserService) Verify(user *models.User, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plaintext)) == nil
}

// SetPassword re-hashes and overwrites the user's password.
func (s *UserService) SetPassword(user *models.User, plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
