package dto

import "github.com/peccode-dev/peccode-api/internal/models"

// LoginRequest carries the credential triple checked at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student staff"`
}

// RegisterRequest carries the fields accepted at account creation.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required,oneof=student staff"`
	Department string `json:"department" validate:"max=255"`
	RollNumber string `json:"roll_number" validate:"max=64"`
}

// UserResponse is the public view of a user record, never carrying the
// password hash.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	RollNumber string `json:"roll_number,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
	JoinedAt   string `json:"joined_at"`
}

// AuthResponse is returned by login and register: the user plus a bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse maps a user model to its public view.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		RollNumber: user.RollNumber,
		ProfilePic: user.ProfilePic,
		JoinedAt:   user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
