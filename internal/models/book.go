package models

import (
	"io"
	"time"
)

// Book statuses
const (
	BookStatusAvailable   = "available"
	BookStatusUnavailable = "unavailable"
)

// Book represents a listing published by an owner.
type Book struct {
	ID            string    `json:"id" db:"id"`                        // Primary key
	Title         string    `json:"title" db:"title"`                  // Book title
	Author        string    `json:"author" db:"author"`                // Book author
	Genre         string    `json:"genre" db:"genre"`                  // Genre, submitted as "category"
	City          string    `json:"city" db:"city"`                    // City where the book is offered
	Location      string    `json:"location" db:"location"`            // Pickup location, defaults to city
	Rating        float64   `json:"rating" db:"rating"`                // 0 to 5
	Image         string    `json:"image" db:"image"`                  // /uploads/<name> or empty
	OwnerID       string    `json:"ownerId" db:"owner_id"`             // Owner's user ID
	OwnerUsername string    `json:"ownerUsername" db:"owner_username"` // Owner's email
	Status        string    `json:"status" db:"status"`                // available or unavailable
	Email         string    `json:"email" db:"email"`                  // Contact email
	Phone         string    `json:"phone" db:"phone"`                  // Contact phone
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// BookFilter narrows a listing query. Title, City and Genre are
// case-insensitive substring matches; OwnerUsername is exact.
// Empty fields are ignored.
type BookFilter struct {
	Title         string
	City          string
	Genre         string
	OwnerUsername string
}

// IsEmpty reports whether no filter field is set.
func (f BookFilter) IsEmpty() bool {
	return f.Title == "" && f.City == "" && f.Genre == "" && f.OwnerUsername == ""
}

// NewBook carries the fields of a listing form.
type NewBook struct {
	Title         string
	Author        string
	Category      string
	City          string
	Location      string
	Rating        string
	OwnerUsername string
}

// BookUpdate carries a partial listing update.
type BookUpdate struct {
	Status   string
	Title    string
	Author   string
	Genre    string
	City     string
	Location string
	Email    string
	Phone    string
	Rating   *float64
}

// Image is an uploaded picture attached to a listing.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
