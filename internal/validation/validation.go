// Package validation holds the field-shape rules shared by the user and book services.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegexp  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegexp = regexp.MustCompile(`^\d{10}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("exchange_email", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRegexp.MatchString(fl.Field().String())
	})
	return v
}

// Registration holds the fields checked before a user is stored.
type Registration struct {
	Name     string `validate:"required"`
	Mobile   string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Role     string `validate:"oneof=owner seeker"`
}

// Listing holds the fields required to publish a book.
type Listing struct {
	Title         string `validate:"required"`
	Author        string `validate:"required"`
	City          string `validate:"required"`
	OwnerUsername string `validate:"required"`
}

// RegistrationComplete reports whether all registration fields are present and the role is known.
func RegistrationComplete(r Registration) bool {
	return validate.Struct(r) == nil
}

// ListingComplete reports whether all required listing fields are present.
func ListingComplete(l Listing) bool {
	return validate.Struct(l) == nil
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return validate.Var(s, "required,exchange_email") == nil
}

// Mobile reports whether s is exactly ten digits.
func Mobile(s string) bool {
	return validate.Var(s, "required,mobile") == nil
}

// Rating reports whether r is within the 0 to 5 scale.
func Rating(r float64) bool {
	return validate.Var(r, "gte=0,lte=5") == nil
}
