// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to authenticate and own files.
// It is created on registration and never modified afterwards.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The login identifier, unique across all users.
	PasswordHash string    // bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}
