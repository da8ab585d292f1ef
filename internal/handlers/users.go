package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/sbilibin2017/gw-book-exchange/internal/services"
)

// UserLister lists registered users.
type UserLister interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// UserUpdater merges profile changes.
type UserUpdater interface {
	UpdateUser(ctx context.Context, upd models.UserUpdate) (*models.User, error)
}

// EmailChecker reports whether an email is taken.
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// NameChecker reports whether a display name is taken.
type NameChecker interface {
	NameExists(ctx context.Context, name string) (bool, error)
}

// UpdateUserRequest represents the JSON body of a profile update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Email of the user being updated
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	Name       string   `json:"name"`
	Mobile     string   `json:"mobile"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Username   string   `json:"username"`
	Gender     string   `json:"gender"`
	Profile    string   `json:"profile"`
	Interests  []string `json:"interests"`
	LookingFor []string `json:"lookingFor"`
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Description Returns all users, or those matching the exact email (preferred) or username
// @Tags users
// @Produce json
// @Param email query string false "Exact email"
// @Param username query string false "Exact username"
// @Success 200 {array} models.User
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		users, err := svc.ListUsers(r.Context(), models.UserFilter{
			Email:    q.Get("email"),
			Username: q.Get("username"),
		})
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewUpdateUserHandler returns an HTTP handler for profile updates.
// @Summary Update user profile
// @Description Merges the non-empty fields into the user identified by email. An invalid mobile is ignored.
// @Tags users
// @Accept json
// @Produce json
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile changes"
// @Success 200 {object} handlers.UserResponse "User updated"
// @Failure 400 {object} handlers.ErrorResponse "Email is required in the request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized: User not found"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.UpdateUser(r.Context(), models.UserUpdate{
			Email:      req.Email,
			Name:       req.Name,
			Mobile:     req.Mobile,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Username:   req.Username,
			Gender:     req.Gender,
			Profile:    req.Profile,
			Interests:  req.Interests,
			LookingFor: req.LookingFor,
		})
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{
			Message: "User updated",
			User:    newUserSummary(user),
		})
	}
}

// NewCheckEmailHandler returns an HTTP handler reporting whether an email is registered.
// @Summary Check email
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} handlers.ExistsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid email"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/check-email [get]
func NewCheckEmailHandler(svc EmailChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exists, err := svc.EmailExists(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidEmail) {
				writeError(w, http.StatusBadRequest, "Invalid email")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
	}
}

// NewCheckNameHandler returns an HTTP handler reporting whether a name is registered.
// @Summary Check name
// @Tags users
// @Produce json
// @Param name query string true "Display name"
// @Success 200 {object} handlers.ExistsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid name"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/check-name [get]
func NewCheckNameHandler(svc NameChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exists, err := svc.NameExists(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidName) {
				writeError(w, http.StatusBadRequest, "Invalid name")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
	}
}
