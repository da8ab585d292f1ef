package models

// Book event operations
const (
	BookListed  = "listed"
	BookUpdated = "updated"
	BookDeleted = "deleted"
)

// BookEvent is published to the message broker whenever a listing changes.
type BookEvent struct {
	EventID       string `json:"event_id"`       // Unique identifier of the event
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (seconds) of the change
	BookID        string `json:"book_id"`        // Identifier of the affected listing
	OwnerUsername string `json:"owner_username"` // Email of the listing owner
	Operation     string `json:"operation"`      // listed, updated or deleted
	Status        string `json:"status"`         // Listing status after the change
}
