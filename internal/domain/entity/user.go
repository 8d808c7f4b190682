// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. The Role distinguishes customers, sellers and
// admins; it is fixed once the account exists.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login handle.
	Email        string    // The user's primary contact email.
	PasswordHash string    // bcrypt hash; never serialized.
	FirstName    string
	LastName     string
	Role         Role
	EcoPoints    int       // Accumulated customer reward points.
	IsActive     bool      // Approval flag for sellers and admins, ban flag for everyone.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsSeller reports whether the account is a seller account.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

// ApprovalStatus returns the moderation label used on the admin dashboard.
func (u *User) ApprovalStatus() string {
	return approvalStatus(u.IsActive)
}
