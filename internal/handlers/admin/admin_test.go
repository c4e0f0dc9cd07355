package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/dto"
	"github.com/numbroker/numbroker/internal/service/authservice"
	"github.com/numbroker/numbroker/internal/service/catalogservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockLedgerService, *MockCatalogService, *MockAuthService) {
	ctrl := gomock.NewController(t)
	ledgerService := NewMockLedgerService(ctrl)
	catalogService := NewMockCatalogService(ctrl)
	authService := NewMockAuthService(ctrl)
	handler := New(ledgerService, catalogService, authService)
	defer ctrl.Finish()
	return handler, ledgerService, catalogService, authService
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestAdjustBalanceHandler(t *testing.T) {
	handler, ledgerService, _, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Balance credited",
			body: `{"user_id":1,"amount":100,"kind":"ADD"}`,
			prepareMock: func() {
				ledgerService.EXPECT().Record(gomock.Any(), 1, 100.0, "ADD", nil).
					Return(&domain.Transaction{ID: 5, UserID: 1, Amount: 100.0, Kind: "ADD", CreatedAt: now}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reward credited",
			body: `{"user_id":1,"amount":10,"kind":"REWARD"}`,
			prepareMock: func() {
				ledgerService.EXPECT().Record(gomock.Any(), 1, 10.0, "REWARD", nil).
					Return(&domain.Transaction{ID: 6, UserID: 1, Amount: 10.0, Kind: "REWARD", CreatedAt: now}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Deduction over the balance",
			body: `{"user_id":1,"amount":500,"kind":"DEDUCT"}`,
			prepareMock: func() {
				ledgerService.EXPECT().Record(gomock.Any(), 1, 500.0, "DEDUCT", nil).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Purchase kind is not adjustable",
			body: `{"user_id":1,"amount":10,"kind":"PURCHASE"}`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown kind",
			body: `{"user_id":1,"amount":10,"kind":"BONUS"}`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Ledger failure",
			body: `{"user_id":1,"amount":100,"kind":"ADD"}`,
			prepareMock: func() {
				ledgerService.EXPECT().Record(gomock.Any(), 1, 100.0, "ADD", nil).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/balance", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.AdjustBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp dto.TransactionResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.NotZero(t, resp.ID)
			}
		})
	}
}

func TestDeleteServiceHandler(t *testing.T) {
	handler, _, catalogService, _ := NewMock(t)

	tests := []struct {
		name         string
		serviceID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Service deleted",
			serviceID: "1",
			prepareMock: func() {
				catalogService.EXPECT().DeleteService(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Service not found",
			serviceID: "99",
			prepareMock: func() {
				catalogService.EXPECT().DeleteService(gomock.Any(), 99).
					Return(catalogservice.ErrServiceNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Invalid service id",
			serviceID: "abc",
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Catalog failure",
			serviceID: "1",
			prepareMock: func() {
				catalogService.EXPECT().DeleteService(gomock.Any(), 1).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("DELETE", "/api/admin/services/"+tt.serviceID, nil)
			req = withURLParam(req, "id", tt.serviceID)
			rr := httptest.NewRecorder()

			handler.DeleteService(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestBanUserHandler(t *testing.T) {
	handler, _, _, authService := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "User banned",
			userID: "1",
			body:   `{"banned":true}`,
			prepareMock: func() {
				authService.EXPECT().BanUser(gomock.Any(), 1, true).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "User unbanned",
			userID: "1",
			body:   `{"banned":false}`,
			prepareMock: func() {
				authService.EXPECT().BanUser(gomock.Any(), 1, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "User not found",
			userID: "99",
			body:   `{"banned":true}`,
			prepareMock: func() {
				authService.EXPECT().BanUser(gomock.Any(), 99, true).
					Return(authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Invalid user id",
			userID: "abc",
			body:   `{"banned":true}`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Invalid request body",
			userID: "1",
			body:   `{invalid json`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/users/"+tt.userID+"/ban", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "id", tt.userID)
			rr := httptest.NewRecorder()

			handler.BanUser(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
