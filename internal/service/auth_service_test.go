package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/peccode-dev/peccode-api/internal/auth"
	"github.com/peccode-dev/peccode-api/internal/dto"
	"github.com/peccode-dev/peccode-api/internal/models"
)

type stubUserRepo struct {
	users map[string]models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]models.User{}}
}

func (s *stubUserRepo) FindByEmailAndRole(ctx context.Context, email, role string) (models.User, error) {
	for _, user := range s.users {
		if user.Email == email && user.Role == role {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	s.users[user.ID] = *user
	return nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id, name, department, profilePic string) error {
	user := s.users[id]
	user.Name = name
	user.Department = department
	user.ProfilePic = profilePic
	s.users[id] = user
	return nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	user := s.users[id]
	user.PasswordHash = passwordHash
	s.users[id] = user
	return nil
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func newAuthService(repo *stubUserRepo) AuthService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	tokens := auth.NewTokenManager("test-secret", 12*time.Hour)
	return NewAuthService(repo, tokens, validate, "x.edu", zerolog.Nop())
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	registered, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Arun",
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)
	require.Equal(t, models.RoleStudent, registered.User.Role)

	response, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, response.User.ID)
	require.NotEmpty(t, response.Token)
}

func TestAuthServiceLoginWrongRoleIsNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Arun",
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStaff,
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Arun",
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "a@x.edu",
		Password: "wrong",
		Role:     models.RoleStudent,
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@x.edu",
		Password: "whatever",
		Role:     models.RoleStudent,
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	payload := dto.RegisterRequest{
		Name:     "Arun",
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStudent,
	}

	_, err := svc.Register(context.Background(), payload)
	require.NoError(t, err)

	// Same email under a different role is still rejected.
	payload.Role = models.RoleStaff
	_, err = svc.Register(context.Background(), payload)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthServiceRegisterStudentRequiresCollegeDomain(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Arun",
		Email:    "a@gmail.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.ErrorIs(t, err, ErrCollegeEmail)

	// Staff accounts are exempt from the domain restriction.
	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@gmail.com",
		Password: "secret123",
		Role:     models.RoleStaff,
	})
	require.NoError(t, err)
}

func TestAuthServiceChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	registered, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Arun",
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), registered.User.ID, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), registered.User.ID, dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "a@x.edu",
		Password: "newsecret",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
}

func TestAuthServiceUpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	registered, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Arun",
		Email:    "a@x.edu",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), registered.User.ID, dto.UpdateProfileRequest{
		Name:       "Arun Kumar",
		Department: "CSE",
	})
	require.NoError(t, err)
	require.Equal(t, "Arun Kumar", updated.Name)
	require.Equal(t, "CSE", updated.Department)
}
