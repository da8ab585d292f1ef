package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/sbilibin2017/gw-book-exchange/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("passes filter", func(t *testing.T) {
		m := NewMockUserLister(ctrl)
		m.EXPECT().
			ListUsers(gomock.Any(), models.UserFilter{Email: "a@x.com", Username: "alice"}).
			Return([]models.User{{ID: "u1", Password: "secret"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users?email=a@x.com&username=alice", nil)
		rr := httptest.NewRecorder()
		NewListUsersHandler(m).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")

		var users []map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
		assert.Len(t, users, 1)
	})

	t.Run("empty result is an array", func(t *testing.T) {
		m := NewMockUserLister(ctrl)
		m.EXPECT().ListUsers(gomock.Any(), models.UserFilter{}).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewListUsersHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		m := NewMockUserLister(ctrl)
		m.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewListUsersHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"email":"a@x.com","name":"Alice","interests":["Poetry"]}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateUser(gomock.Any(), models.UserUpdate{Email: "a@x.com", Name: "Alice", Interests: []string{"Poetry"}}).
					Return(&models.User{ID: "u1", Email: "a@x.com", Name: "Alice", Mobile: "9876543210"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"user":{"id":"u1","name":"Alice","email":"a@x.com","role":"","firstName":"","lastName":"","username":""}`,
		},
		{
			name: "user vanished",
			body: `{"email":"a@x.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `"error":"User not found"`,
		},
		{
			name:         "invalid json",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `"error":"Invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewUpdateUserHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

func TestCheckEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		query        string
		exists       bool
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "taken", query: "a@x.com", exists: true, expectedCode: http.StatusOK, expectedBody: `{"exists":true}`},
		{name: "free", query: "b@x.com", expectedCode: http.StatusOK, expectedBody: `{"exists":false}`},
		{name: "invalid", query: "nope", err: services.ErrInvalidEmail, expectedCode: http.StatusBadRequest, expectedBody: `{"error":"Invalid email"}`},
		{name: "internal", query: "a@x.com", err: errors.New("boom"), expectedCode: http.StatusInternalServerError, expectedBody: `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockEmailChecker(ctrl)
			m.EXPECT().EmailExists(gomock.Any(), tt.query).Return(tt.exists, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/users/check-email?email="+tt.query, nil)
			rr := httptest.NewRecorder()
			NewCheckEmailHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestCheckNameHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockNameChecker(ctrl)
	m.EXPECT().NameExists(gomock.Any(), "").Return(false, services.ErrInvalidName)
	m.EXPECT().NameExists(gomock.Any(), "Alice").Return(true, nil)

	rr := httptest.NewRecorder()
	NewCheckNameHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/check-name", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid name"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewCheckNameHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/check-name?name=Alice", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"exists":true}`, rr.Body.String())
}
