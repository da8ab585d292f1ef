package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}

	tests := []struct {
		name             string
		method           string
		origin           string
		expectedOrigin   string
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:             "allowed origin",
			method:           http.MethodGet,
			origin:           "http://localhost:5173",
			expectedOrigin:   "http://localhost:5173",
			expectedStatus:   http.StatusTeapot,
			expectNextCalled: true,
		},
		{
			name:             "foreign origin",
			method:           http.MethodGet,
			origin:           "http://evil.example",
			expectedStatus:   http.StatusTeapot,
			expectNextCalled: true,
		},
		{
			name:           "preflight",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			expectedOrigin: "http://localhost:3000",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/api/books", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			CORSMiddleware(origins)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedOrigin != "" {
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}
