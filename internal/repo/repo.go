package repo

import (
	"github.com/numbroker/numbroker/internal/pg"
	catalogrepo "github.com/numbroker/numbroker/internal/repo/catalog-repo"
	ledgerrepo "github.com/numbroker/numbroker/internal/repo/ledger-repo"
	poolrepo "github.com/numbroker/numbroker/internal/repo/pool-repo"
	reservationrepo "github.com/numbroker/numbroker/internal/repo/reservation-repo"
	userrepo "github.com/numbroker/numbroker/internal/repo/user-repo"
	"github.com/numbroker/numbroker/internal/service/authservice"
	"github.com/numbroker/numbroker/internal/service/catalogservice"
	"github.com/numbroker/numbroker/internal/service/ledgerservice"
	"github.com/numbroker/numbroker/internal/service/poolservice"
	"github.com/numbroker/numbroker/internal/service/reservationservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	LedgerRepo      ledgerservice.LedgerRepo
	CatalogRepo     catalogservice.CatalogRepo
	PoolRepo        poolservice.PoolRepo
	ReservationRepo reservationservice.ReservationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn)
	catalogRepo := catalogrepo.New(conn)
	poolRepo := poolrepo.New(conn)
	reservationRepo := reservationrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:        userRepo,
		LedgerRepo:      ledgerRepo,
		CatalogRepo:     catalogRepo,
		PoolRepo:        poolRepo,
		ReservationRepo: reservationRepo,
	}
}
