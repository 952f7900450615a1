package models

import "time"

// Role values form a closed set; authorization is an exact match on these.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

// ValidRole reports whether the supplied role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleStaff
}

// User represents a portal account, either a student or a staff member.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:16;not null" json:"role"`
	Department   string    `gorm:"size:255" json:"department"`
	RollNumber   string    `gorm:"size:64" json:"roll_number"`
	ProfilePic   string    `gorm:"size:512" json:"profile_pic"`
	CreatedAt    time.Time `json:"joined_at"`
	UpdatedAt    time.Time `json:"-"`
}

// IsStaff reports whether the user holds the staff role.
func (u User) IsStaff() bool {
	return u.Role == RoleStaff
}
