package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/peccode-dev/peccode-api/internal/auth"
	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/repository"
)

// Credential and account failures. Each is terminal for the request.
// ErrUserNotFound and ErrInvalidCredentials stay distinct so the UI can
// tell "no such account" from "wrong password", matching the portal's
// established behavior.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrCollegeEmail       = errors.New("please use your college email address")
)

// AuthService verifies credentials and manages user accounts.
type AuthService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error)
	Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error)
	Profile(ctx context.Context, userID string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, payload dto.UpdateProfileRequest) (dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, payload dto.ChangePasswordRequest) error
}

type authService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	validator  *validator.Validate
	mailDomain string
	logger     zerolog.Logger
}

// NewAuthService builds the authentication service. Students registering
// must use an address under mailDomain; staff accounts are exempt.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, validate *validator.Validate, mailDomain string, logger zerolog.Logger) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		validator:  validate,
		mailDomain: strings.ToLower(strings.TrimSpace(mailDomain)),
		logger:     logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login checks the (email, password, role) triple against the stored
// record. The lookup key is (email, role): an existing account queried
// with the wrong role fails as not-found, before any password check.
func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := s.users.FindByEmailAndRole(ctx, payload.Email, payload.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, ErrUserNotFound
		}
		return dto.AuthResponse{}, err
	}

	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	return s.respondWithToken(user)
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	email := strings.TrimSpace(payload.Email)

	if payload.Role == models.RoleStudent && s.mailDomain != "" {
		if !strings.HasSuffix(strings.ToLower(email), s.mailDomain) {
			return dto.AuthResponse{}, ErrCollegeEmail
		}
	}

	// Email uniqueness is global, not per role.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return dto.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthResponse{}, err
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(payload.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         payload.Role,
		Department:   strings.TrimSpace(payload.Department),
		RollNumber:   strings.TrimSpace(payload.RollNumber),
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")

	return s.respondWithToken(user)
}

func (s *authService) Profile(ctx context.Context, userID string) (dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, payload dto.UpdateProfileRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	err := s.users.UpdateProfile(ctx, userID, strings.TrimSpace(payload.Name), strings.TrimSpace(payload.Department), strings.TrimSpace(payload.ProfilePic))
	if err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, payload dto.ChangePasswordRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := auth.CheckPassword(user.PasswordHash, payload.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(payload.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, hash)
}

func (s *authService) respondWithToken(user models.User) (dto.AuthResponse, error) {
	token, err := s.tokens.Issue(auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return dto.AuthResponse{}, err
	}

	return dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}
