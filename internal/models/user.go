package models

import "time"

// Supported user roles
const (
	RoleOwner  = "owner"
	RoleSeeker = "seeker"
)

// User represents a registered user of the exchange.
// Password is kept in storage only and never serialized to clients.
type User struct {
	ID         string     `json:"id" db:"id"`                             // Primary key
	Name       string     `json:"name" db:"name"`                         // Display name
	Mobile     string     `json:"mobile" db:"mobile"`                     // 10-digit mobile number
	Email      string     `json:"email" db:"email"`                       // Unique email, also the owner username of listings
	Password   string     `json:"-" db:"password"`                        // Plaintext password
	Role       string     `json:"role" db:"role"`                         // owner or seeker
	FirstName  string     `json:"firstName" db:"first_name"`              // Optional first name
	LastName   string     `json:"lastName" db:"last_name"`                // Optional last name
	Username   string     `json:"username" db:"username"`                 // Optional public handle
	Gender     string     `json:"gender,omitempty" db:"gender"`           // M, F or -
	Interests  StringList `json:"interests,omitempty" db:"interests"`     // Genres the user reads
	LookingFor StringList `json:"lookingFor,omitempty" db:"looking_for"` // Books the user is looking for
	Profile    string     `json:"profile,omitempty" db:"profile"`         // Profile picture path
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserFilter selects users by exact email or, when email is empty, by exact username.
type UserFilter struct {
	Email    string
	Username string
}

// UserUpdate carries the profile fields a user may change.
// Empty strings and nil slices leave the stored value untouched.
type UserUpdate struct {
	Email      string
	Name       string
	Mobile     string
	FirstName  string
	LastName   string
	Username   string
	Gender     string
	Profile    string
	Interests  []string
	LookingFor []string
}
