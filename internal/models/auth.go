package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the session token and the role-stripped profile.
type LoginResponse struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
	User      UserInfo  `json:"user"`
}

// UserInfo describes a user in responses. The credential hash never leaves
// the repository layer, so this is safe to serialise as-is.
type UserInfo struct {
	Email          string          `json:"email"`
	FullName       string          `json:"name"`
	Role           UserRole        `json:"type"`
	StudentProfile *StudentProfile `json:"student,omitempty"`
	FacultyProfile *FacultyProfile `json:"faculty,omitempty"`
}

// NewUserInfo projects a User into its public shape.
func NewUserInfo(u *User) UserInfo {
	return UserInfo{
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           u.Role,
		StudentProfile: u.StudentProfile,
		FacultyProfile: u.FacultyProfile,
	}
}

// SessionClaims is the JWT payload carried by the session cookie. The token
// holds only the session binding ID plus identity hints; the authoritative
// binding lives server-side in the session repository.
type SessionClaims struct {
	SessionID string   `json:"session_id"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	jwt.RegisteredClaims
}
