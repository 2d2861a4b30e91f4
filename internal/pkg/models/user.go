package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RolePatient = "patient"
	RoleDentist = "dentist"
	RoleAdmin   = "admin"
)

// User represents an account in the directory (patient, dentist or admin)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload for creating a patient account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// RoleUpdateRequest changes the role of an account
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// IsValidRole reports whether role is one of the known roles
func IsValidRole(role string) bool {
	switch role {
	case RolePatient, RoleDentist, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of a usecase operation
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
