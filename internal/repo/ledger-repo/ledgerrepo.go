package ledgerrepo

import (
	"context"

	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// LockUser serializes balance-affecting work per user for the lifetime of
// the surrounding transaction.
func (r *Repository) LockUser(ctx context.Context, userID int) error {
	var id int
	err := r.db.QueryRow(ctx, "SELECT id FROM users WHERE id = $1 FOR UPDATE", userID).Scan(&id)
	if err != nil {
		zap.L().Error("can't lock user row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) BalanceOf(ctx context.Context, userID int) (float64, error) {
	var balance float64
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE user_id = $1
    `
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't derive balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) Append(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, kind, reservation_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Kind, tx.ReservationID, tx.CreatedAt).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't append transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, kind, reservation_id, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Kind, &tx.ReservationID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
