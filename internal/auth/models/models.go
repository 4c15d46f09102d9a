// Package models holds the authentication domain types shared between the
// credential store, the auth service, and the HTTP layer.
package models

// RoleDoctor is the only role with write access to the registries.
const RoleDoctor = "doctor"

// User is a credential-store entry. The password hash never leaves the
// process; JSON serialization skips it.
type User struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// TokenResult is the login response shape.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenTypeBearer is the only token type this service issues.
const TokenTypeBearer = "bearer"
