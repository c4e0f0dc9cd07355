package poolrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

// FindAvailable returns a cached active number for the service with no
// pending reservation attached, or nil when the local pool is empty.
func (r *Repository) FindAvailable(ctx context.Context, serviceID int) (*domain.PoolNumber, error) {
	query := `
        SELECT id, phone, external_id, service_id, provider, country, usage_count, active, deleted, created_at
        FROM pool_numbers n
        WHERE n.service_id = $1
          AND n.active = TRUE
          AND n.deleted = FALSE
          AND NOT EXISTS (
              SELECT 1 FROM reservations res
              WHERE res.number_id = n.id AND res.status = 'PENDING'
          )
        ORDER BY n.usage_count DESC, n.id
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, serviceID)
	var number domain.PoolNumber
	err := row.Scan(&number.ID, &number.Phone, &number.ExternalID, &number.ServiceID, &number.Provider,
		&number.Country, &number.UsageCount, &number.Active, &number.Deleted, &number.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find available number", zap.Error(err))
		return nil, err
	}
	return &number, nil
}

func (r *Repository) FindByID(ctx context.Context, numberID int) (*domain.PoolNumber, error) {
	query := `
        SELECT id, phone, external_id, service_id, provider, country, usage_count, active, deleted, created_at
        FROM pool_numbers
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, numberID)
	var number domain.PoolNumber
	err := row.Scan(&number.ID, &number.Phone, &number.ExternalID, &number.ServiceID, &number.Provider,
		&number.Country, &number.UsageCount, &number.Active, &number.Deleted, &number.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pool number", zap.Error(err))
		return nil, err
	}
	return &number, nil
}

func (r *Repository) Save(ctx context.Context, number *domain.PoolNumber) (*domain.PoolNumber, error) {
	query := `
		INSERT INTO pool_numbers (phone, external_id, service_id, provider, country, usage_count, active, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, TRUE, FALSE, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, number.Phone, number.ExternalID, number.ServiceID,
		number.Provider, number.Country, number.CreatedAt).Scan(&number.ID)
	if err != nil {
		zap.L().Error("can't save pool number", zap.Error(err))
		return nil, err
	}
	return number, nil
}

// IncrementUsage bumps the usage counter and retires the number once the
// limit is reached, in a single statement.
func (r *Repository) IncrementUsage(ctx context.Context, numberID int) (*domain.PoolNumber, error) {
	query := `
		UPDATE pool_numbers
		SET usage_count = usage_count + 1,
		    active  = (usage_count + 1 < $2),
		    deleted = (usage_count + 1 >= $2)
		WHERE id = $1
		RETURNING id, phone, external_id, service_id, provider, country, usage_count, active, deleted, created_at
	`
	row := r.db.QueryRow(ctx, query, numberID, domain.MaxNumberUsage)
	var number domain.PoolNumber
	err := row.Scan(&number.ID, &number.Phone, &number.ExternalID, &number.ServiceID, &number.Provider,
		&number.Country, &number.UsageCount, &number.Active, &number.Deleted, &number.CreatedAt)
	if err != nil {
		zap.L().Error("can't increment usage", zap.Error(err))
		return nil, err
	}
	return &number, nil
}

// RetireByService marks unclaimed numbers of a force-deleted service as
// deleted; numbers under a pending reservation ride out their time box.
func (r *Repository) RetireByService(ctx context.Context, serviceID int) error {
	query := `
		UPDATE pool_numbers n
		SET active = FALSE, deleted = TRUE
		WHERE n.service_id = $1
		  AND n.deleted = FALSE
		  AND NOT EXISTS (
		      SELECT 1 FROM reservations res
		      WHERE res.number_id = n.id AND res.status = 'PENDING'
		  )
	`
	_, err := r.db.Exec(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't retire numbers", zap.Error(err))
		return err
	}
	return nil
}
