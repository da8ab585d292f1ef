package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-book-exchange/internal/models"
	"github.com/sbilibin2017/gw-book-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-book-exchange/internal/services"
	"github.com/stretchr/testify/assert"
)

// The reader and the writer disagree here: the record changed between the
// service's lookup and its write.

func TestRegisterHandler_EmailStoredConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserReader(ctrl)
	reader.EXPECT().GetByEmail(gomock.Any(), "a@b.co").Return(nil, nil)

	writer := repositories.NewUserMemoryRepository()
	assert.NoError(t, writer.Save(context.Background(), models.User{ID: "u0", Email: "a@b.co"}))

	body := `{"name":"A","mobile":"9876543210","email":"a@b.co","password":"p","role":"owner"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	NewRegisterHandler(services.NewUserService(reader, writer)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, rr.Body.String())
}

func TestUpdateUserHandler_UserRemovedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserReader(ctrl)
	reader.EXPECT().GetByEmail(gomock.Any(), "a@b.co").Return(&models.User{ID: "u0", Email: "a@b.co"}, nil)

	svc := services.NewUserService(reader, repositories.NewUserMemoryRepository())

	req := httptest.NewRequest(http.MethodPut, "/api/users", strings.NewReader(`{"email":"a@b.co","name":"A"}`))
	rr := httptest.NewRecorder()

	NewUpdateUserHandler(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())
}

func TestBookByIDHandlers_BookRemovedConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		method string
		body   string
	}{
		{name: "update", method: http.MethodPut, body: `{"status":"unavailable"}`},
		{name: "delete", method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockBookReader(ctrl)
			reader.EXPECT().GetByID(gomock.Any(), "b1").Return(&models.Book{ID: "b1"}, nil)

			svc := services.NewBookService(reader, repositories.NewBookMemoryRepository(), nil, nil, nil, nil)

			req := httptest.NewRequest(tt.method, "/api/books/b1", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newBookRouter(svc, svc, svc).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Book not found"}`, rr.Body.String())
		})
	}
}
