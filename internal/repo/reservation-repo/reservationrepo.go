package reservationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const columns = "id, user_id, number_id, service_id, price, status, code, created_at, deadline"

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(&res.ID, &res.UserID, &res.NumberID, &res.ServiceID, &res.Price,
		&res.Status, &res.Code, &res.CreatedAt, &res.Deadline)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create is the atomic claim on a pool number: the insert only succeeds when
// no pending reservation references the number. Returns nil when the claim
// was lost to a concurrent reservation, whether the loser saw the committed
// row (no insert) or raced an uncommitted one into the partial unique index.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query := `
		INSERT INTO reservations (user_id, number_id, service_id, price, status, code, created_at, deadline)
		SELECT $1, $2, $3, $4, $5, '', $6, $7
		WHERE NOT EXISTS (
		    SELECT 1 FROM reservations WHERE number_id = $2 AND status = 'PENDING'
		)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, res.UserID, res.NumberID, res.ServiceID, res.Price,
		res.Status, res.CreatedAt, res.Deadline).Scan(&res.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, nil
		}
		zap.L().Error("can't create reservation", zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Reservation, error) {
	query := `SELECT ` + columns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find reservation", zap.Error(err))
		return nil, err
	}
	return res, nil
}

// FindByIDForUpdate locks the reservation row; every terminal transition
// re-reads the status under this lock before writing it.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Reservation, error) {
	query := `SELECT ` + columns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock reservation", zap.Error(err))
		return nil, err
	}
	return res, nil
}

// FindByExternalID routes an inbound webhook push to the most recent
// reservation holding the provider's number. Terminal reservations are
// returned too, so a duplicate push lands in the idempotent Deliver path
// instead of erroring.
func (r *Repository) FindByExternalID(ctx context.Context, provider, externalID string) (*domain.Reservation, error) {
	query := `
        SELECT res.id, res.user_id, res.number_id, res.service_id, res.price, res.status, res.code, res.created_at, res.deadline
        FROM reservations res
        JOIN pool_numbers n ON n.id = res.number_id
        WHERE n.provider = $1 AND n.external_id = $2
        ORDER BY res.created_at DESC
        LIMIT 1
    `
	res, err := scanReservation(r.db.QueryRow(ctx, query, provider, externalID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find reservation by external id", zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Reservation, error) {
	query := `
        SELECT ` + columns + `
        FROM reservations
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch reservations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		err := rows.Scan(&res.ID, &res.UserID, &res.NumberID, &res.ServiceID, &res.Price,
			&res.Status, &res.Code, &res.CreatedAt, &res.Deadline)
		if err != nil {
			zap.L().Error("can't scan reservation row", zap.Error(err))
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// FindPending returns the snapshot of open reservations for one sweep cycle.
func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Reservation, error) {
	query := `
        SELECT ` + columns + `
        FROM reservations
        WHERE status = 'PENDING'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't fetch pending reservations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		err := rows.Scan(&res.ID, &res.UserID, &res.NumberID, &res.ServiceID, &res.Price,
			&res.Status, &res.Code, &res.CreatedAt, &res.Deadline)
		if err != nil {
			zap.L().Error("can't scan pending reservation row", zap.Error(err))
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status, code string) error {
	query := `
		UPDATE reservations
		SET status = $1, code = $2
		WHERE id = $3
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, code, id)
		if err != nil {
			zap.L().Error("can't update reservation status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
