// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Gender values accepted at signup.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// ValidGender reports whether g is one of the accepted gender values.
// The empty string is allowed because the field is optional.
func ValidGender(g string) bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"_id"`

	// Username is the unique handle used for login.
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`

	// Email is the user's email address. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords, and it is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	// IsSuperuser marks administrative accounts.
	IsSuperuser bool `gorm:"not null;default:false" json:"is_superuser"`

	// IsActive marks whether the account may log in.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	// Gender is an optional self-description (Male, Female or Other).
	Gender string `gorm:"size:16" json:"gender,omitempty"`

	// LastLogin is set on every successful authentication.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
