package middlewares

//go:generate mockgen -source=identify.go -destination=identify_mock.go -package=middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-book-exchange/internal/logger"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
)

// UserIdentifier looks up the user a request claims to act for.
type UserIdentifier interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// IdentifyMiddleware rejects requests whose JSON body does not name a registered user by email.
// The body is restored for the next handler.
func IdentifyMiddleware(users UserIdentifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			var req struct {
				Email string `json:"email"`
			}
			if err := json.Unmarshal(body, &req); err != nil {
				writeError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			if req.Email == "" {
				writeError(w, http.StatusBadRequest, "Email is required in the request body")
				return
			}

			user, err := users.GetByEmail(ctx, req.Email)
			if err != nil {
				log.Errorw("identification failed", "email", req.Email, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				log.Warnw("identification failed: unknown user", "email", req.Email)
				writeError(w, http.StatusUnauthorized, "Unauthorized: User not found")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
