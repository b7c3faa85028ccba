package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	UserStatusActive      = "active"
	UserStatusInactive    = "inactive"
	UserStatusNotVerified = "not_verified"
	UserStatusBanned      = "banned"
)

// ParseRole validates a role string coming from a request body.
func ParseRole(s string) (string, error) {
	switch s {
	case RoleAdmin, RoleUser:
		return s, nil
	}
	return "", ErrInvalidRole
}

// ParseUserStatus validates a user status string coming from a request body.
func ParseUserStatus(s string) (string, error) {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusNotVerified, UserStatusBanned:
		return s, nil
	}
	return "", ErrInvalidUserStatus
}

type User struct {
	ID        int        `json:"id"`
	Role      string     `json:"role"`
	Name      string     `json:"name"`
	LastName  *string    `json:"last_name,omitempty"`
	Email     string     `json:"email"`
	Password  string     `json:"password,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type UserUpdate struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Phone    *string `json:"phone"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Message     string `json:"message"`
	UserID      int    `json:"user_id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
