package numbers

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
	"github.com/numbroker/numbroker/internal/service/reservationservice"
	"github.com/numbroker/numbroker/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*NumbersHandler, *MockReservationService, *MockPoolService, *MockCatalogService) {
	ctrl := gomock.NewController(t)
	reservationService := NewMockReservationService(ctrl)
	poolService := NewMockPoolService(ctrl)
	catalogService := NewMockCatalogService(ctrl)
	handler := New(reservationService, poolService, catalogService)
	defer ctrl.Finish()
	return handler, reservationService, poolService, catalogService
}

func authorized(r *http.Request, userID int, isAdmin bool) *http.Request {
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.IsAdminKey, isAdmin)
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestListServicesHandler(t *testing.T) {
	handler, _, _, catalogService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Services listed",
			prepareMock: func() {
				catalogService.EXPECT().ListServices(gomock.Any()).Return([]domain.Service{
					{ID: 1, Code: "tg", Name: "Telegram", Country: "US", Provider: "acme", Price: 1.5},
					{ID: 2, Code: "wa", Name: "WhatsApp", Country: "US", Provider: "acme", Price: 2.0},
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "Catalog failure",
			prepareMock: func() {
				catalogService.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/services", nil)
			rr := httptest.NewRecorder()

			handler.ListServices(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []dto.ServiceResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedCount)
				assert.Equal(t, "tg", resp[0].Code)
			}
		})
	}
}

func TestOpenReservationHandler(t *testing.T) {
	handler, reservationService, poolService, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Reservation opened",
			body: `{"service_id":3}`,
			prepareMock: func() {
				reservationService.EXPECT().Open(gomock.Any(), 1, 3).Return(&domain.Reservation{
					ID: 7, UserID: 1, NumberID: 5, ServiceID: 3, Price: 1.5,
					Status: "PENDING", CreatedAt: now, Deadline: now.Add(10 * time.Minute),
				}, nil)
				poolService.EXPECT().GetNumber(gomock.Any(), 5).
					Return(&domain.PoolNumber{ID: 5, Phone: "+15550001111"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"service_id":3}`,
			prepareMock: func() {
				reservationService.EXPECT().Open(gomock.Any(), 1, 3).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Banned user",
			body: `{"service_id":3}`,
			prepareMock: func() {
				reservationService.EXPECT().Open(gomock.Any(), 1, 3).
					Return(nil, authservice.ErrUserBanned)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "No numbers in stock",
			body: `{"service_id":3}`,
			prepareMock: func() {
				reservationService.EXPECT().Open(gomock.Any(), 1, 3).
					Return(nil, domain.ErrNoStock)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Provider unavailable",
			body: `{"service_id":3}`,
			prepareMock: func() {
				reservationService.EXPECT().Open(gomock.Any(), 1, 3).
					Return(nil, domain.ErrProviderUnavailable)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Provider credentials rejected",
			body: `{"service_id":3}`,
			prepareMock: func() {
				reservationService.EXPECT().Open(gomock.Any(), 1, 3).
					Return(nil, domain.ErrAuthFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Unexpected failure",
			body: `{"service_id":3}`,
			prepareMock: func() {
				reservationService.EXPECT().Open(gomock.Any(), 1, 3).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest("POST", "/api/user/reservations", bytes.NewReader([]byte(tt.body))), 1, false)
			rr := httptest.NewRecorder()

			handler.OpenReservation(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp dto.ReservationResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 7, resp.ID)
				assert.Equal(t, "+15550001111", resp.Phone)
				assert.Equal(t, "PENDING", resp.Status)
			}
		})
	}
}

func TestGetReservationsHandler(t *testing.T) {
	handler, reservationService, poolService, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Reservations listed",
			prepareMock: func() {
				reservationService.EXPECT().GetReservations(gomock.Any(), 1).Return([]domain.Reservation{
					{ID: 7, UserID: 1, NumberID: 5, Status: "DELIVERED", Code: "482910"},
					{ID: 6, UserID: 1, NumberID: 4, Status: "EXPIRED"},
				}, nil)
				poolService.EXPECT().GetNumber(gomock.Any(), 5).
					Return(&domain.PoolNumber{ID: 5, Phone: "+15550001111"}, nil)
				poolService.EXPECT().GetNumber(gomock.Any(), 4).
					Return(&domain.PoolNumber{ID: 4, Phone: "+15550002222"}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "No reservations",
			prepareMock: func() {
				reservationService.EXPECT().GetReservations(gomock.Any(), 1).Return([]domain.Reservation{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				reservationService.EXPECT().GetReservations(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest("GET", "/api/user/reservations", nil), 1, false)
			rr := httptest.NewRecorder()

			handler.GetReservations(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []dto.ReservationResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedCount)
				assert.Equal(t, "482910", resp[0].Code)
			}
		})
	}
}

func TestCancelReservationHandler(t *testing.T) {
	handler, reservationService, poolService, _ := NewMock(t)

	tests := []struct {
		name         string
		reservation  string
		isAdmin      bool
		prepareMock  func()
		expectedCode int
	}{
		{
			name:        "Owner cancels",
			reservation: "7",
			prepareMock: func() {
				reservationService.EXPECT().Cancel(gomock.Any(), 7, 1, false).Return(&domain.Reservation{
					ID: 7, UserID: 1, NumberID: 5, Status: "CANCELLED",
				}, nil)
				poolService.EXPECT().GetNumber(gomock.Any(), 5).
					Return(&domain.PoolNumber{ID: 5, Phone: "+15550001111"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:        "Admin cancels",
			reservation: "7",
			isAdmin:     true,
			prepareMock: func() {
				reservationService.EXPECT().Cancel(gomock.Any(), 7, 1, true).Return(&domain.Reservation{
					ID: 7, UserID: 2, NumberID: 5, Status: "CANCELLED",
				}, nil)
				poolService.EXPECT().GetNumber(gomock.Any(), 5).
					Return(&domain.PoolNumber{ID: 5, Phone: "+15550001111"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:        "Reservation not found",
			reservation: "99",
			prepareMock: func() {
				reservationService.EXPECT().Cancel(gomock.Any(), 99, 1, false).
					Return(nil, reservationservice.ErrReservationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:        "Not the owner",
			reservation: "7",
			prepareMock: func() {
				reservationService.EXPECT().Cancel(gomock.Any(), 7, 1, false).
					Return(nil, reservationservice.ErrNotOwner)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:        "Already terminal",
			reservation: "7",
			prepareMock: func() {
				reservationService.EXPECT().Cancel(gomock.Any(), 7, 1, false).
					Return(nil, domain.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:        "Invalid reservation id",
			reservation: "abc",
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/reservations/"+tt.reservation+"/cancel", nil)
			req = authorized(req, 1, tt.isAdmin)
			req = withURLParam(req, "id", tt.reservation)
			rr := httptest.NewRecorder()

			handler.CancelReservation(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeliverCodeHandler(t *testing.T) {
	handler, reservationService, poolService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Code delivered through webhook",
			body: `{"external_number_id":"ext-9","code":"482910"}`,
			prepareMock: func() {
				reservationService.EXPECT().DeliverByExternalID(gomock.Any(), "pushco", "ext-9", "482910").
					Return(&domain.Reservation{ID: 7, UserID: 1, NumberID: 5, Status: "DELIVERED", Code: "482910"}, nil)
				poolService.EXPECT().GetNumber(gomock.Any(), 5).
					Return(&domain.PoolNumber{ID: 5, Phone: "+15550001111"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No pending reservation",
			body: `{"external_number_id":"ext-9","code":"482910"}`,
			prepareMock: func() {
				reservationService.EXPECT().DeliverByExternalID(gomock.Any(), "pushco", "ext-9", "482910").
					Return(nil, reservationservice.ErrReservationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Reservation already terminal",
			body: `{"external_number_id":"ext-9","code":"482910"}`,
			prepareMock: func() {
				reservationService.EXPECT().DeliverByExternalID(gomock.Any(), "pushco", "ext-9", "482910").
					Return(nil, domain.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Missing code",
			body: `{"external_number_id":"ext-9"}`,
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/webhook/pushco", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "provider", "pushco")
			rr := httptest.NewRecorder()

			handler.DeliverCode(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
