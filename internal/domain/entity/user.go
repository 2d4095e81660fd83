// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// User is an account that can register stores, comment on them and carry out visits.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Username     string     // Unique login name.
	Email        *string    // Optional unique contact email.
	FullName     *string    // Optional display name.
	PasswordHash string     // bcrypt hash of the user's password.
	LastLocation *orb.Point // Last location reported by the client, if any.
	LastLoginAt  *time.Time // Timestamp of the most recent successful login.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}

// UserSummary is the subset of a user shown next to records they authored.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName *string   `json:"fullName"`
}
