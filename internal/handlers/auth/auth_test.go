package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/service/authservice"
	"github.com/numbroker/numbroker/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(&domain.User{
					ID:           1,
					Login:        "newuser",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(1, false).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "User already exists",
			body: `{"login":"existinguser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "existinguser", "password123").
					Return(nil, errors.New("user already exists"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "user already exists",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "newuser", "password123").Return(&domain.User{
					ID:           1,
					Login:        "newuser",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().
					GenerateToken(1, false).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"user","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "user", "password123").Return(&domain.User{
					ID:    1,
					Login: "user",
				}, nil)
				service.EXPECT().GenerateToken(1, false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Admin keeps the admin claim",
			body: `{"login":"admin","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "admin", "password123").Return(&domain.User{
					ID:      2,
					Login:   "admin",
					IsAdmin: true,
				}, nil)
				service.EXPECT().GenerateToken(2, true).Return("admin-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"user","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "user", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Banned user",
			body: `{"login":"banned","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "banned", "password123").
					Return(nil, authservice.ErrUserBanned)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "User is banned",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
