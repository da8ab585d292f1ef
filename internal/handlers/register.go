package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/sbilibin2017/gw-book-exchange/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, user models.User) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: Alice
	Name string `json:"name"`

	// Mobile number, exactly 10 digits
	// required: true
	// default: 9876543210
	Mobile string `json:"mobile"`

	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Role, owner or seeker
	// required: true
	// default: owner
	Role string `json:"role"`

	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Username   string   `json:"username"`
	Gender     string   `json:"gender"`
	Interests  []string `json:"interests"`
	LookingFor []string `json:"lookingFor"`
	Profile    string   `json:"profile"`
}

// UserSummary is the public part of a user returned after register, login and update
// swagger:model UserSummary
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

func newUserSummary(u *models.User) *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
	}
}

// UserResponse carries a confirmation and the affected user
// swagger:model UserResponse
type UserResponse struct {
	// Success message
	// default: User registered
	Message string       `json:"message"`
	User    *UserSummary `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an owner or seeker account. Email must be unique and mobile exactly 10 digits.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.UserResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input, email or mobile, or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Register(r.Context(), models.User{
			Name:       req.Name,
			Mobile:     req.Mobile,
			Email:      req.Email,
			Password:   req.Password,
			Role:       req.Role,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Username:   req.Username,
			Gender:     req.Gender,
			Interests:  req.Interests,
			LookingFor: req.LookingFor,
			Profile:    req.Profile,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRegistration):
				writeError(w, http.StatusBadRequest, "Invalid input: All fields and valid role required")
			case errors.Is(err, services.ErrInvalidEmail):
				writeError(w, http.StatusBadRequest, "Invalid email format")
			case errors.Is(err, services.ErrInvalidMobile):
				writeError(w, http.StatusBadRequest, "Invalid mobile number (10 digits required)")
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusBadRequest, "Email already exists")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, UserResponse{
			Message: "User registered",
			User:    newUserSummary(user),
		})
	}
}
