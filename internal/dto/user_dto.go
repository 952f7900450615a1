package dto

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Department string `json:"department" validate:"max=255"`
	ProfilePic string `json:"profile_pic" validate:"max=512"`
}

// ChangePasswordRequest carries a password rotation request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}
