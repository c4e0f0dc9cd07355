package provider

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/numbroker/numbroker/internal/config"
	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*HTTPProvider, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	p := NewHTTPProvider(config.ProviderConfig{
		Name:         "acme",
		Address:      "http://acme.local",
		APIKey:       "secret",
		Mode:         string(domain.ModePolling),
		PollInterval: 30 * time.Second,
	})
	p.client = client
	defer ctrl.Finish()
	return p, client
}

func TestHTTPProvider_RequestNumber(t *testing.T) {
	p, client := NewMock(t)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedNumber *ExternalNumber
		expectedError  error
	}{
		{
			name: "Number granted",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers", gomock.Any(), `{"service":"tg","country":"US"}`).
					Return(http.StatusOK, []byte(`{"id":"ext-1","phone":"+15550001111"}`), nil)
			},
			expectedNumber: &ExternalNumber{ID: "ext-1", Phone: "+15550001111"},
		},
		{
			name: "Out of stock",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers", gomock.Any(), gomock.Any()).
					Return(http.StatusNotFound, nil, nil)
			},
			expectedError: domain.ErrNoStock,
		},
		{
			name: "Conflict also means no stock",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers", gomock.Any(), gomock.Any()).
					Return(http.StatusConflict, nil, nil)
			},
			expectedError: domain.ErrNoStock,
		},
		{
			name: "Bad credentials",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers", gomock.Any(), gomock.Any()).
					Return(http.StatusUnauthorized, nil, nil)
			},
			expectedError: domain.ErrAuthFailed,
		},
		{
			name: "Server error",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers", gomock.Any(), gomock.Any()).
					Return(http.StatusInternalServerError, nil, nil)
			},
			expectedError: domain.ErrProviderUnavailable,
		},
		{
			name: "Transport error",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers", gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectedError: domain.ErrProviderUnavailable,
		},
		{
			name: "Malformed response body",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte("not json"), nil)
			},
			expectedError: domain.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			number, err := p.RequestNumber(context.Background(), "tg", "US")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, number)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedNumber, number)
			}
		})
	}
}

func TestHTTPProvider_CheckCode(t *testing.T) {
	p, client := NewMock(t)

	tests := []struct {
		name          string
		mockSetup     func()
		expectedCode  string
		expectedError error
	}{
		{
			name: "Code received",
			mockSetup: func() {
				client.EXPECT().
					Get(gomock.Any(), "http://acme.local/numbers/ext-1/code", gomock.Any()).
					Return(http.StatusOK, []byte(`{"code":"482910"}`), nil)
			},
			expectedCode: "482910",
		},
		{
			name: "No code yet",
			mockSetup: func() {
				client.EXPECT().
					Get(gomock.Any(), "http://acme.local/numbers/ext-1/code", gomock.Any()).
					Return(http.StatusNoContent, nil, nil)
			},
			expectedCode: "",
		},
		{
			name: "Bad credentials",
			mockSetup: func() {
				client.EXPECT().
					Get(gomock.Any(), "http://acme.local/numbers/ext-1/code", gomock.Any()).
					Return(http.StatusForbidden, nil, nil)
			},
			expectedError: domain.ErrAuthFailed,
		},
		{
			name: "Transport error",
			mockSetup: func() {
				client.EXPECT().
					Get(gomock.Any(), "http://acme.local/numbers/ext-1/code", gomock.Any()).
					Return(0, nil, errors.New("timeout"))
			},
			expectedError: domain.ErrProviderUnavailable,
		},
		{
			name: "Unexpected status",
			mockSetup: func() {
				client.EXPECT().
					Get(gomock.Any(), "http://acme.local/numbers/ext-1/code", gomock.Any()).
					Return(http.StatusBadGateway, nil, nil)
			},
			expectedError: domain.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			code, err := p.CheckCode(context.Background(), "ext-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCode, code)
			}
		})
	}
}

func TestHTTPProvider_ReleaseNumber(t *testing.T) {
	p, client := NewMock(t)

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
	}{
		{
			name: "Released",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers/ext-1/release", gomock.Any(), "").
					Return(http.StatusNoContent, nil, nil)
			},
		},
		{
			name: "Transport error",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers/ext-1/release", gomock.Any(), "").
					Return(0, nil, errors.New("connection reset"))
			},
			expectedError: domain.ErrProviderUnavailable,
		},
		{
			name: "Unexpected status",
			mockSetup: func() {
				client.EXPECT().
					Post(gomock.Any(), "http://acme.local/numbers/ext-1/release", gomock.Any(), "").
					Return(http.StatusInternalServerError, nil, nil)
			},
			expectedError: domain.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := p.ReleaseNumber(context.Background(), "ext-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHTTPProvider_Meta(t *testing.T) {
	p, _ := NewMock(t)
	assert.Equal(t, "acme", p.Name())
	assert.Equal(t, domain.ModePolling, p.Mode())
	assert.Equal(t, 30*time.Second, p.PollInterval())
}
