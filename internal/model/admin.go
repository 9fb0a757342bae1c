package model

import "time"

// Admin is a back-office user. Only ACTIVE admins may log in or call admin
// endpoints; the middleware re-checks the row on every request.
type Admin struct {
	ID           uint64    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RefreshToken models a stored refresh token. Only the SHA-256 hash of the
// raw token is persisted.
type RefreshToken struct {
	ID        uint64
	AdminID   uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
