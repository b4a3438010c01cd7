package model

import "time"

// User is the stored identity record. The password hash never leaves the
// server: it is excluded from every JSON rendering.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthUser is the public shape returned by login.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SessionClaims is the decoded content of a verified session token.
type SessionClaims struct {
	UserID    string
	Email     string
	Timestamp int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}
