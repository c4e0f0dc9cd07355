package reservationservice

import (
	"context"
	"errors"
	"time"

	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/notify"
	"github.com/numbroker/numbroker/internal/pg"
	"github.com/numbroker/numbroker/internal/provider"
	"github.com/numbroker/numbroker/internal/service/authservice"
	"github.com/numbroker/numbroker/internal/service/ledgerservice"
	"go.uber.org/zap"
)

type ReservationRepo interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindByID(ctx context.Context, id int) (*domain.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Reservation, error)
	FindByExternalID(ctx context.Context, provider, externalID string) (*domain.Reservation, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Reservation, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int, status, code string) error
}

type Users interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Ledger interface {
	Record(ctx context.Context, userID int, amount float64, kind string, reservationID *int) (*domain.Transaction, error)
}

type NumberPool interface {
	Acquire(ctx context.Context, svc *domain.Service) (*domain.PoolNumber, error)
	RecordUsage(ctx context.Context, numberID int) (*domain.PoolNumber, error)
	GetNumber(ctx context.Context, numberID int) (*domain.PoolNumber, error)
}

type Catalog interface {
	GetService(ctx context.Context, serviceID int) (*domain.Service, error)
}

type ProviderRegistry interface {
	Get(name string) (provider.Client, error)
}

type Service struct {
	repo      ReservationRepo
	ledger    Ledger
	pool      NumberPool
	catalog   Catalog
	users     Users
	registry  ProviderRegistry
	notifier  notify.Notifier
	txManager pg.TXManager
	ttl       time.Duration
}

func New(repo ReservationRepo, ledger Ledger, pool NumberPool, catalog Catalog, users Users,
	registry ProviderRegistry, notifier notify.Notifier, txManager pg.TXManager, ttl time.Duration) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		pool:      pool,
		catalog:   catalog,
		users:     users,
		registry:  registry,
		notifier:  notifier,
		txManager: txManager,
		ttl:       ttl,
	}
}

const (
	StatusPending   string = "PENDING"
	StatusDelivered string = "DELIVERED"
	StatusExpired   string = "EXPIRED"
	StatusCancelled string = "CANCELLED"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotOwner            = errors.New("reservation belongs to another user")
)

// Open debits the purchase price, acquires a number and claims it with a new
// pending reservation. Any failure after the debit is compensated with a
// refund before the error is returned, so the user never nets a loss for a
// number that was never granted.
func (s *Service) Open(ctx context.Context, userID, serviceID int) (*domain.Reservation, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsBanned {
		return nil, authservice.ErrUserBanned
	}

	svc, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.Active {
		return nil, domain.ErrNoStock
	}

	if _, err := s.ledger.Record(ctx, userID, svc.Price, ledgerservice.KindPurchase, nil); err != nil {
		return nil, err
	}

	number, err := s.pool.Acquire(ctx, svc)
	if err != nil {
		s.compensate(ctx, userID, svc.Price, nil)
		return nil, err
	}

	now := time.Now()
	res := &domain.Reservation{
		UserID:    userID,
		NumberID:  number.ID,
		ServiceID: svc.ID,
		Price:     svc.Price,
		Status:    StatusPending,
		CreatedAt: now,
		Deadline:  now.Add(s.ttl),
	}
	created, err := s.repo.Create(ctx, res)
	if err != nil {
		s.compensate(ctx, userID, svc.Price, nil)
		return nil, err
	}
	if created == nil {
		// the claim lost a race for this number
		s.compensate(ctx, userID, svc.Price, nil)
		return nil, domain.ErrInvariantViolation
	}

	zap.L().Info("reservation opened",
		zap.Int("reservationID", created.ID),
		zap.Int("userID", userID),
		zap.Int("numberID", number.ID),
	)
	return created, nil
}

const compensateAttempts = 3

// compensate refunds a debit whose purchase fell through. The refund is
// retried a few times; a final failure means the balance is short and needs
// a manual ledger correction, so it is logged loudly.
func (s *Service) compensate(ctx context.Context, userID int, price float64, reservationID *int) {
	var err error
	for attempt := 1; attempt <= compensateAttempts; attempt++ {
		if _, err = s.ledger.Record(ctx, userID, price, ledgerservice.KindRefund, reservationID); err == nil {
			return
		}
		zap.L().Warn("compensating refund failed",
			zap.Int("userID", userID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	zap.L().Error("compensating refund exhausted retries, balance needs manual correction",
		zap.Int("userID", userID),
		zap.Float64("amount", price),
		zap.Error(err),
	)
}

// Deliver moves a pending reservation to delivered and counts the usage in
// the same transaction. A repeated delivery returns the stored code without
// a second usage increment; delivery always wins over a passed deadline
// because the status is re-read under the row lock.
func (s *Service) Deliver(ctx context.Context, id int, code string) (*domain.Reservation, error) {
	var out *domain.Reservation
	var duplicate bool

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		res, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if res == nil {
			return ErrReservationNotFound
		}

		switch res.Status {
		case StatusDelivered:
			out = res
			duplicate = true
			return nil
		case StatusExpired, StatusCancelled:
			return domain.ErrInvalidTransition
		}

		if err := s.repo.UpdateStatus(ctx, id, StatusDelivered, code); err != nil {
			return err
		}
		if _, err := s.pool.RecordUsage(ctx, res.NumberID); err != nil {
			return err
		}
		res.Status = StatusDelivered
		res.Code = code
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !duplicate {
		zap.L().Info("code delivered", zap.Int("reservationID", id))
		s.emit(out)
	}
	return out, nil
}

// DeliverByExternalID is the webhook entry point for push-mode providers.
// The lookup ignores reservation status so a repeated push for an already
// delivered reservation reaches Deliver and gets the stored code back.
func (s *Service) DeliverByExternalID(ctx context.Context, providerName, externalID, code string) (*domain.Reservation, error) {
	res, err := s.repo.FindByExternalID(ctx, providerName, externalID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrReservationNotFound
	}
	return s.Deliver(ctx, res.ID, code)
}

// Expire moves a pending reservation past its deadline to expired and refunds
// the purchase in the same transaction. The usage counter stays untouched.
func (s *Service) Expire(ctx context.Context, id int) (*domain.Reservation, error) {
	var out *domain.Reservation
	var duplicate bool

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		res, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if res == nil {
			return ErrReservationNotFound
		}

		switch res.Status {
		case StatusExpired:
			out = res
			duplicate = true
			return nil
		case StatusDelivered, StatusCancelled:
			return domain.ErrInvalidTransition
		}

		if time.Now().Before(res.Deadline) {
			return domain.ErrInvalidTransition
		}

		if err := s.repo.UpdateStatus(ctx, id, StatusExpired, res.Code); err != nil {
			return err
		}
		if _, err := s.ledger.Record(ctx, res.UserID, res.Price, ledgerservice.KindRefund, &res.ID); err != nil {
			return err
		}
		res.Status = StatusExpired
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !duplicate {
		zap.L().Info("reservation expired", zap.Int("reservationID", id))
		s.release(out.NumberID)
		s.emit(out)
	}
	return out, nil
}

// Cancel is user-initiated early termination with the same refund and
// release semantics as Expire. Only the owner or an admin may cancel.
func (s *Service) Cancel(ctx context.Context, id, userID int, isAdmin bool) (*domain.Reservation, error) {
	var out *domain.Reservation
	var duplicate bool

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		res, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if res == nil {
			return ErrReservationNotFound
		}
		if res.UserID != userID && !isAdmin {
			return ErrNotOwner
		}

		switch res.Status {
		case StatusCancelled:
			out = res
			duplicate = true
			return nil
		case StatusDelivered, StatusExpired:
			return domain.ErrInvalidTransition
		}

		if err := s.repo.UpdateStatus(ctx, id, StatusCancelled, res.Code); err != nil {
			return err
		}
		if _, err := s.ledger.Record(ctx, res.UserID, res.Price, ledgerservice.KindRefund, &res.ID); err != nil {
			return err
		}
		res.Status = StatusCancelled
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !duplicate {
		zap.L().Info("reservation cancelled", zap.Int("reservationID", id), zap.Int("userID", userID))
		s.release(out.NumberID)
		s.emit(out)
	}
	return out, nil
}

func (s *Service) GetReservations(ctx context.Context, userID int) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get reservations", zap.Error(err))
		return nil, err
	}
	return reservations, nil
}

func (s *Service) FindPending(ctx context.Context, limit uint32) ([]domain.Reservation, error) {
	return s.repo.FindPending(ctx, limit)
}

// release sends a best-effort cancellation notice upstream; the local record
// is authoritative regardless of the outcome.
func (s *Service) release(numberID int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		number, err := s.pool.GetNumber(ctx, numberID)
		if err != nil || number == nil {
			zap.L().Error("can't load number for release", zap.Int("numberID", numberID), zap.Error(err))
			return
		}
		client, err := s.registry.Get(number.Provider)
		if err != nil {
			zap.L().Error("can't resolve provider for release", zap.String("provider", number.Provider), zap.Error(err))
			return
		}
		if err := client.ReleaseNumber(ctx, number.ExternalID); err != nil {
			zap.L().Warn("release notice failed", zap.String("externalID", number.ExternalID), zap.Error(err))
		}
	}()
}

// emit notifies the front-end sink outside the transactional boundary.
func (s *Service) emit(res *domain.Reservation) {
	event := notify.NewEvent(res.ID, res.UserID, res.Status, res.Code)
	go s.notifier.Notify(context.Background(), event)
}
