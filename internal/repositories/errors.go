package repositories

import "errors"

var (
	// ErrDuplicateEmail is returned when a user with the same email is already stored.
	ErrDuplicateEmail = errors.New("email already stored")
	// ErrNoRecord is returned by writers when the record to change does not exist.
	ErrNoRecord = errors.New("record not found")
)
