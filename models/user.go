package models

import (
	"strings"
	"time"
)

// User mirrors the users table. The stored credential never leaves the
// server; responses carry the public fields only.
type User struct {
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          *string   `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
	EmailVerified bool      `json:"email_verified"`
}

// NormalizeEmail canonicalizes an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Name     *string `json:"name"`
}

// LoginRequest is the login payload. Validation here stays loose on purpose:
// a malformed email should produce the same generic rejection as a wrong one.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordRecoveryRequest carries the address to send a reset link to.
type PasswordRecoveryRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest is a partial profile patch. Absent fields are left
// untouched.
type UpdateUserRequest struct {
	Email         *string   `json:"email" binding:"omitempty,email"`
	Password      *string   `json:"password"`
	Name          OptString `json:"name"`
	EmailVerified *bool     `json:"email_verified"`
}

// SearchUsersRequest is the user listing/search query.
type SearchUsersRequest struct {
	Query     string `form:"query"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=email created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ApplyDefaults fills the search defaults: recency-sorted, newest first.
func (r *SearchUsersRequest) ApplyDefaults() {
	if r.Limit == 0 {
		r.Limit = 10
	}
	if r.SortBy == "" {
		r.SortBy = "created_at"
	}
	if r.SortOrder == "" {
		r.SortOrder = "desc"
	}
}
