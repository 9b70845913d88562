// Package reminder periodically re-notifies the administrator about
// transactions that have been waiting for a decision too long. A transaction
// left pending forever is allowed; this only nudges the human.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rgalimov/fortuna/internal/config"
	"github.com/rgalimov/fortuna/internal/domain"
)

//go:generate mockgen -source=reminder.go -destination=mock_reminder.go -package=reminder

const notifyConcurrency = 4

type Transactions interface {
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error)
}

type Notifier interface {
	NotifyAdmin(ctx context.Context, text string) error
}

type Service struct {
	scheduler *cron.Cron
	txns      Transactions
	notifier  Notifier
	schedule  string
	age       time.Duration
}

func New(cfg *config.Config, txns Transactions, notifier Notifier) *Service {
	return &Service{
		scheduler: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		txns:      txns,
		notifier:  notifier,
		schedule:  cfg.ReminderSchedule,
		age:       cfg.ReminderAge,
	}
}

func (s *Service) Start(ctx context.Context) error {
	_, err := s.scheduler.AddFunc(s.schedule, func() {
		if err := s.Sweep(ctx); err != nil {
			zap.L().Error("pending reminder sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("can't schedule pending reminder: %w", err)
	}

	s.scheduler.Start()
	go func() {
		<-ctx.Done()
		<-s.scheduler.Stop().Done()
	}()

	zap.L().Info("pending reminder started", zap.String("schedule", s.schedule))
	return nil
}

func (s *Service) Sweep(ctx context.Context) error {
	stale, err := s.txns.ListPendingOlderThan(ctx, time.Now().Add(-s.age))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(notifyConcurrency)
	for _, txn := range stale {
		txn := txn
		g.Go(func() error {
			return s.notifier.NotifyAdmin(ctx, fmt.Sprintf(
				"Transaction %d from user %d (%d attempts for %d) is still pending since %s.",
				txn.ID, txn.UserID, txn.Attempts, txn.Amount, txn.CreatedAt.Format(time.RFC3339),
			))
		})
	}
	return g.Wait()
}
