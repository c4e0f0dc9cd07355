package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/pg"
	"go.uber.org/zap"
)

type LedgerRepo interface {
	LockUser(ctx context.Context, userID int) error
	BalanceOf(ctx context.Context, userID int) (float64, error)
	Append(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type Service struct {
	repo      LedgerRepo
	txManager pg.TXManager
}

func New(repo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

const (
	KindAdd      string = "ADD"
	KindDeduct   string = "DEDUCT"
	KindPurchase string = "PURCHASE"
	KindRefund   string = "REFUND"
	KindReward   string = "REWARD"
)

func isDebit(kind string) bool {
	return kind == KindDeduct || kind == KindPurchase
}

func validKind(kind string) bool {
	switch kind {
	case KindAdd, KindDeduct, KindPurchase, KindRefund, KindReward:
		return true
	}
	return false
}

// Record appends a transaction for amount (a positive magnitude; the sign is
// derived from kind). The negative-balance check and the append run under the
// same per-user lock, so two concurrent purchases by one user cannot
// double-spend.
func (s *Service) Record(ctx context.Context, userID int, amount float64, kind string, reservationID *int) (*domain.Transaction, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("unknown transaction kind: %s", kind)
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative, got %f", amount)
	}

	signed := amount
	if isDebit(kind) {
		signed = -amount
	}

	transaction := &domain.Transaction{
		UserID:        userID,
		Amount:        signed,
		Kind:          kind,
		ReservationID: reservationID,
		CreatedAt:     time.Now(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.LockUser(ctx, userID); err != nil {
			return err
		}
		if isDebit(kind) {
			balance, err := s.repo.BalanceOf(ctx, userID)
			if err != nil {
				return err
			}
			if balance+signed < 0 {
				return domain.ErrInsufficientFunds
			}
		}
		_, err := s.repo.Append(ctx, transaction)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("transaction recorded",
		zap.Int("userID", userID),
		zap.String("kind", kind),
		zap.Float64("amount", signed),
	)
	return transaction, nil
}

// Balance is always the fold of the user's transactions.
func (s *Service) Balance(ctx context.Context, userID int) (float64, error) {
	balance, err := s.repo.BalanceOf(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) History(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
