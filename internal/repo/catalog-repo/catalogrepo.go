package catalogrepo

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

func (r *Repository) FindByID(ctx context.Context, serviceID int) (*domain.Service, error) {
	query := `
        SELECT id, code, name, country, provider, price, active
        FROM services
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, serviceID)
	var svc domain.Service
	err := row.Scan(&svc.ID, &svc.Code, &svc.Name, &svc.Country, &svc.Provider, &svc.Price, &svc.Active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	return &svc, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Service, error) {
	query := `
        SELECT id, code, name, country, provider, price, active
        FROM services
        WHERE active = TRUE
        ORDER BY name, country
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(&svc.ID, &svc.Code, &svc.Name, &svc.Country, &svc.Provider, &svc.Price, &svc.Active)
		if err != nil {
			zap.L().Error("can't scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

// Deactivate force-deletes a service for new acquisitions. Existing
// reservations are untouched.
func (r *Repository) Deactivate(ctx context.Context, serviceID int) error {
	query := `
		UPDATE services
		SET active = FALSE
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, serviceID)
	if err != nil {
		zap.L().Error("can't deactivate service", zap.Error(err))
		return err
	}
	return nil
}
