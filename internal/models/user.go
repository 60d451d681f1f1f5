package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        string    `json:"email" db:"email"`                 // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password, never serialized
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`           // Administrator flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}

// UserResponse is the public user payload returned by the auth endpoints.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// NewUserResponse builds the public payload for a user record.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}
