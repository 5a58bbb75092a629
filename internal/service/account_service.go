package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusworks/student-portal-api/internal/models"
	"github.com/campusworks/student-portal-api/internal/repository"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
)

type userRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// CreateAccountRequest is the account-creation payload. Every field is
// required; empty strings count as missing.
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// LoginRequest is the login payload. Fields are not pre-validated: a missing
// username simply fails the lookup, as the legacy service behaved.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AccountService handles account creation and login.
type AccountService struct {
	users     userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(users userRepository, validate *validator.Validate, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AccountService{users: users, validator: validate, logger: logger}
}

// CreateAccount inserts a user with a lowercased role. Student accounts get a
// zeroed student_data row alongside.
func (s *AccountService) CreateAccount(ctx context.Context, req CreateAccountRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.ErrMissingFields
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		Role:     strings.ToLower(req.Role),
		Email:    req.Email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return appErrors.ErrUsernameExists
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("account created", zap.String("username", user.Username), zap.String("role", user.Role))
	return nil
}

// Login checks username, password and role in that order and returns the
// stored role (original casing) on success.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.ErrInvalidUsername
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	// Plaintext comparison is the documented legacy behavior; see DESIGN.md.
	if user.Password != req.Password {
		return "", appErrors.ErrInvalidPassword
	}

	if !strings.EqualFold(user.Role, req.Role) {
		return "", appErrors.RoleMismatch(req.Role)
	}

	return user.Role, nil
}
