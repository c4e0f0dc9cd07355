package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/numbroker/numbroker/internal/config"
	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/provider"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var processingReservations sync.Map

// pollGate paces CheckCode rounds per provider. Every reservation of a
// provider inside one sweep cycle shares the round; the next round opens
// only after the provider's poll interval has elapsed.
type pollGate struct {
	mu   sync.Mutex
	last map[string]time.Time
}

func newPollGate() *pollGate {
	return &pollGate{last: make(map[string]time.Time)}
}

func (g *pollGate) allow(provider string, interval time.Duration, cycle time.Time) bool {
	if interval <= 0 {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	last, seen := g.last[provider]
	if seen && last.Equal(cycle) {
		return true
	}
	if seen && cycle.Sub(last) < interval {
		return false
	}
	g.last[provider] = cycle
	return true
}

type ReservationManager interface {
	Deliver(ctx context.Context, id int, code string) (*domain.Reservation, error)
	Expire(ctx context.Context, id int) (*domain.Reservation, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.Reservation, error)
}

type NumberPool interface {
	GetNumber(ctx context.Context, numberID int) (*domain.PoolNumber, error)
}

type ProviderRegistry interface {
	Get(name string) (provider.Client, error)
}

// Service is the single reconciliation loop driving every pending
// reservation toward delivered or expired. Expiry latency is bounded by one
// sweep interval; there are no per-reservation timers.
type Service struct {
	reservations  ReservationManager
	pool          NumberPool
	registry      ProviderRegistry
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	pollGate      *pollGate
}

func New(cfg *config.Config, reservations ReservationManager, pool NumberPool, registry ProviderRegistry) *Service {
	return &Service{
		reservations:  reservations,
		pool:          pool,
		registry:      registry,
		limit:         uint32(cfg.SweepLimit),
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
		pollGate:      newPollGate(),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("polling scheduler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scheduler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep works over a snapshot of open reservations; ones opened mid-cycle
// are picked up next cycle. Per-reservation failures never abort the sweep.
func (s *Service) sweep(ctx context.Context) {
	reservations, err := s.reservations.FindPending(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch reservations for sweep", zap.Error(err))
		return
	}

	cycle := time.Now()
	var g errgroup.Group
	for _, res := range reservations {
		res := res

		if _, loaded := processingReservations.LoadOrStore(res.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingReservations.Delete(res.ID)
				return s.handleReservation(ctx, res, cycle)
			})
			if err != nil {
				processingReservations.Delete(res.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing reservations", zap.Error(err))
	}
}

func (s *Service) handleReservation(ctx context.Context, res domain.Reservation, cycle time.Time) error {
	if !time.Now().Before(res.Deadline) {
		if _, err := s.reservations.Expire(ctx, res.ID); err != nil {
			// a code may have landed between snapshot and expiry; delivery wins
			if errors.Is(err, domain.ErrInvalidTransition) {
				return nil
			}
			return fmt.Errorf("failed to expire reservation %d: %w", res.ID, err)
		}
		return nil
	}

	number, err := s.pool.GetNumber(ctx, res.NumberID)
	if err != nil || number == nil {
		return fmt.Errorf("failed to load number %d: %w", res.NumberID, err)
	}
	client, err := s.registry.Get(number.Provider)
	if err != nil {
		return fmt.Errorf("failed to resolve provider %s: %w", number.Provider, err)
	}
	if client.Mode() != domain.ModePolling {
		return nil
	}
	if !s.pollGate.allow(number.Provider, client.PollInterval(), cycle) {
		return nil
	}

	code, err := client.CheckCode(ctx, number.ExternalID)
	if err != nil {
		return fmt.Errorf("failed to check code for reservation %d: %w", res.ID, err)
	}
	if code == "" {
		return nil
	}

	if _, err := s.reservations.Deliver(ctx, res.ID, code); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return nil
		}
		return fmt.Errorf("failed to deliver code for reservation %d: %w", res.ID, err)
	}
	return nil
}
