package service

import (
	"github.com/numbroker/numbroker/internal/config"
	"github.com/numbroker/numbroker/internal/notify"
	"github.com/numbroker/numbroker/internal/pg"
	"github.com/numbroker/numbroker/internal/provider"
	"github.com/numbroker/numbroker/internal/repo"
	"github.com/numbroker/numbroker/internal/service/authservice"
	"github.com/numbroker/numbroker/internal/service/catalogservice"
	"github.com/numbroker/numbroker/internal/service/ledgerservice"
	"github.com/numbroker/numbroker/internal/service/poolservice"
	"github.com/numbroker/numbroker/internal/service/reservationservice"
	pkgauth "github.com/numbroker/numbroker/pkg/auth"
)

type Services struct {
	AuthService        *authservice.Service
	LedgerService      *ledgerservice.Service
	CatalogService     *catalogservice.Service
	PoolService        *poolservice.Service
	ReservationService *reservationservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager,
	registry *provider.Registry, notifier notify.Notifier) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager)
	poolService := poolservice.New(repo.PoolRepo, registry)
	catalogService := catalogservice.New(repo.CatalogRepo, poolService)
	reservationService := reservationservice.New(repo.ReservationRepo, ledgerService, poolService,
		catalogService, repo.UserRepo, registry, notifier, txManager, cfg.ReservationTTL)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		LedgerService:      ledgerService,
		CatalogService:     catalogService,
		PoolService:        poolService,
		ReservationService: reservationService,
	}
}
