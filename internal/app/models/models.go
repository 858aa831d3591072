package models

import "time"

// RoleType identifies what a user can do on the platform
type RoleType string

const (
	// RoleStudent browses centers, books demo classes and buys books
	RoleStudent RoleType = "STUDENT"
	// RoleOwner registers and manages coaching centers
	RoleOwner RoleType = "OWNER"
)

// User represents a registered account
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone,omitempty"`
	RoleType     RoleType  `json:"roleType"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RefreshToken is a stored refresh token tied to a user session
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry
func (t *RefreshToken) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}
