package poolservice

import (
	"context"
	"fmt"
	"time"

	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/provider"
	"github.com/numbroker/numbroker/pkg/validate"
	"go.uber.org/zap"
)

type PoolRepo interface {
	FindAvailable(ctx context.Context, serviceID int) (*domain.PoolNumber, error)
	FindByID(ctx context.Context, numberID int) (*domain.PoolNumber, error)
	Save(ctx context.Context, number *domain.PoolNumber) (*domain.PoolNumber, error)
	IncrementUsage(ctx context.Context, numberID int) (*domain.PoolNumber, error)
	RetireByService(ctx context.Context, serviceID int) error
}

type ProviderRegistry interface {
	Get(name string) (provider.Client, error)
}

type Service struct {
	repo     PoolRepo
	registry ProviderRegistry
}

func New(repo PoolRepo, registry ProviderRegistry) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
	}
}

// Acquire prefers a cached active number with no pending reservation; only
// when the local pool is empty does it lease a fresh number upstream.
// Exclusivity is not enforced here but by the reservation claim.
func (s *Service) Acquire(ctx context.Context, svc *domain.Service) (*domain.PoolNumber, error) {
	number, err := s.repo.FindAvailable(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	if number != nil {
		return number, nil
	}

	client, err := s.registry.Get(svc.Provider)
	if err != nil {
		zap.L().Error("can't resolve provider", zap.String("provider", svc.Provider), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	external, err := client.RequestNumber(ctx, svc.Code, svc.Country)
	if err != nil {
		return nil, err
	}
	if !validate.IsPhone(external.Phone) {
		zap.L().Error("provider returned a malformed phone",
			zap.String("provider", svc.Provider),
			zap.String("phone", external.Phone),
		)
		return nil, fmt.Errorf("%w: malformed phone %q", domain.ErrProviderUnavailable, external.Phone)
	}

	number = &domain.PoolNumber{
		Phone:      external.Phone,
		ExternalID: external.ID,
		ServiceID:  svc.ID,
		Provider:   svc.Provider,
		Country:    svc.Country,
		CreatedAt:  time.Now(),
	}
	saved, err := s.repo.Save(ctx, number)
	if err != nil {
		return nil, err
	}

	zap.L().Info("leased new pool number",
		zap.String("provider", svc.Provider),
		zap.String("externalID", external.ID),
		zap.Int("serviceID", svc.ID),
	)
	return saved, nil
}

// RecordUsage counts exactly one delivered reservation; the number retires
// once the usage limit is reached.
func (s *Service) RecordUsage(ctx context.Context, numberID int) (*domain.PoolNumber, error) {
	number, err := s.repo.IncrementUsage(ctx, numberID)
	if err != nil {
		return nil, err
	}
	if number.Deleted {
		zap.L().Info("pool number retired", zap.Int("numberID", numberID), zap.Int("usageCount", number.UsageCount))
	}
	return number, nil
}

func (s *Service) GetNumber(ctx context.Context, numberID int) (*domain.PoolNumber, error) {
	return s.repo.FindByID(ctx, numberID)
}

func (s *Service) RetireByService(ctx context.Context, serviceID int) error {
	return s.repo.RetireByService(ctx, serviceID)
}
