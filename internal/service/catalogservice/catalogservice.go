package catalogservice

import (
	"context"
	"errors"

	"github.com/numbroker/numbroker/internal/domain"
	"go.uber.org/zap"
)

type CatalogRepo interface {
	FindByID(ctx context.Context, serviceID int) (*domain.Service, error)
	FindActive(ctx context.Context) ([]domain.Service, error)
	Deactivate(ctx context.Context, serviceID int) error
}

type NumberPool interface {
	RetireByService(ctx context.Context, serviceID int) error
}

type Service struct {
	repo CatalogRepo
	pool NumberPool
}

func New(repo CatalogRepo, pool NumberPool) *Service {
	return &Service{
		repo: repo,
		pool: pool,
	}
}

var ErrServiceNotFound = errors.New("service not found")

func (s *Service) GetService(ctx context.Context, serviceID int) (*domain.Service, error) {
	svc, err := s.repo.FindByID(ctx, serviceID)
	if err != nil {
		zap.L().Error("failed to get service", zap.Error(err))
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to list services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

// DeleteService force-deletes a service: it disappears for new acquisitions
// and its unclaimed numbers retire. Pending reservations keep their time box.
func (s *Service) DeleteService(ctx context.Context, serviceID int) error {
	svc, err := s.repo.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	if err := s.repo.Deactivate(ctx, serviceID); err != nil {
		return err
	}
	if err := s.pool.RetireByService(ctx, serviceID); err != nil {
		return err
	}
	zap.L().Info("service force-deleted", zap.Int("serviceID", serviceID))
	return nil
}
