package middlewares

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIdentifyMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		body             string
		mockSetup        func(m *MockUserIdentifier)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name:           "invalid json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:           "missing email",
			body:           `{"name":"Alice"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Email is required in the request body"}`,
		},
		{
			name: "unknown user",
			body: `{"email":"ghost@example.com"}`,
			mockSetup: func(m *MockUserIdentifier) {
				m.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized: User not found"}`,
		},
		{
			name: "lookup failure",
			body: `{"email":"a@example.com"}`,
			mockSetup: func(m *MockUserIdentifier) {
				m.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
		{
			name: "known user",
			body: `{"email":"a@example.com","name":"Alice"}`,
			mockSetup: func(m *MockUserIdentifier) {
				m.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(&models.User{ID: "u1"}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedBody:     `{"email":"a@example.com","name":"Alice"}`,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserIdentifier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				body, _ := io.ReadAll(r.Body)
				w.Write(body)
			})

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/users", strings.NewReader(tt.body))
			IdentifyMiddleware(m)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
