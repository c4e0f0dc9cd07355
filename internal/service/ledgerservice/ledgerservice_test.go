package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, txManager)
	defer ctrl.Finish()
	return service, repo, txManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRecord(t *testing.T) {
	service, repo, txManager := NewMock(t)
	reservationID := 7

	tests := []struct {
		name           string
		userID         int
		amount         float64
		kind           string
		reservationID  *int
		prepareMock    func()
		expectedAmount float64
		expectedError  error
	}{
		{
			name:   "Credit needs no balance check",
			userID: 1,
			amount: 50.0,
			kind:   KindAdd,
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, 50.0, tx.Amount)
						return tx, nil
					})
			},
			expectedAmount: 50.0,
		},
		{
			name:          "Purchase debits with a negative sign",
			userID:        1,
			amount:        10.0,
			kind:          KindPurchase,
			reservationID: &reservationID,
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				repo.EXPECT().BalanceOf(gomock.Any(), 1).Return(25.0, nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, -10.0, tx.Amount)
						assert.Equal(t, &reservationID, tx.ReservationID)
						return tx, nil
					})
			},
			expectedAmount: -10.0,
		},
		{
			name:   "Insufficient funds leaves no transaction",
			userID: 1,
			amount: 100.0,
			kind:   KindPurchase,
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				repo.EXPECT().BalanceOf(gomock.Any(), 1).Return(25.0, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:   "Debit of exactly the balance is allowed",
			userID: 1,
			amount: 25.0,
			kind:   KindDeduct,
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				repo.EXPECT().BalanceOf(gomock.Any(), 1).Return(25.0, nil)
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						return tx, nil
					})
			},
			expectedAmount: -25.0,
		},
		{
			name:          "Unknown kind rejected",
			userID:        1,
			amount:        10.0,
			kind:          "BONUS",
			prepareMock:   func() {},
			expectedError: errors.New("unknown transaction kind: BONUS"),
		},
		{
			name:          "Negative amount rejected",
			userID:        1,
			amount:        -5.0,
			kind:          KindAdd,
			prepareMock:   func() {},
			expectedError: errors.New("amount must be non-negative, got -5.000000"),
		},
		{
			name:   "Lock failure",
			userID: 1,
			amount: 10.0,
			kind:   KindAdd,
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockUser(gomock.Any(), 1).Return(errors.New("lock error"))
			},
			expectedError: errors.New("lock error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			tx, err := service.Record(context.Background(), tt.userID, tt.amount, tt.kind, tt.reservationID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAmount, tx.Amount)
				assert.Equal(t, tt.kind, tx.Kind)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expected      float64
		expectedError error
	}{
		{
			name:   "Balance returned",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().BalanceOf(gomock.Any(), 1).Return(42.5, nil)
			},
			expected: 42.5,
		},
		{
			name:   "Repo failure",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().BalanceOf(gomock.Any(), 1).Return(0.0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.Balance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	service, repo, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expected      []domain.Transaction
		expectedError error
	}{
		{
			name:   "History returned",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: 2, UserID: 1, Amount: -10.0, Kind: KindPurchase, CreatedAt: now},
					{ID: 1, UserID: 1, Amount: 50.0, Kind: KindAdd, CreatedAt: now.Add(-time.Hour)},
				}, nil)
			},
			expected: []domain.Transaction{
				{ID: 2, UserID: 1, Amount: -10.0, Kind: KindPurchase, CreatedAt: now},
				{ID: 1, UserID: 1, Amount: 50.0, Kind: KindAdd, CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name:   "Repo failure",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			transactions, err := service.History(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, transactions)
			}
		})
	}
}
