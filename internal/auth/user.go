// Copyright (c) 2026 Melody. All rights reserved.

/*
Package auth implements the user identity layer.

It defines the core domain entity (User) and the logic for registration and
credential verification.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/chorogi/melody/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Melody platform.
//
// Only the password hash and role are mutable after registration, and both
// change exclusively through admin flows outside this service.
type User struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldToken       = "token"
	FieldUser        = "user"
)
