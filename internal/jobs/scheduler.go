// Package jobs управляет фоновыми задачами по расписанию.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	// clicksRetention сколько дней хранятся дневные счетчики кликов. На лимит они не
	// влияют (он ключуется датой), чистка нужна только от разрастания таблицы.
	clicksRetention = 7 * 24 * time.Hour
	// staleDepositAge возраст pending депозита, после которого он считается брошенным.
	// Страховка на случай депозитов, пропущенных вочером.
	staleDepositAge = 30 * time.Minute
)

type GameServicer interface {
	PurgeClicksBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type WalletServicer interface {
	FailStaleDeposits(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler запускает регулярные задачи: ночную чистку счетчиков кликов и добивание
// брошенных депозитов.
type Scheduler struct {
	cron          *cron.Cron
	gameService   GameServicer
	walletService WalletServicer
	l             *logrus.Entry
}

func NewScheduler(gameService GameServicer, walletService WalletServicer, l *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		gameService:   gameService,
		walletService: walletService,
		l:             l.WithField("component", "jobs"),
	}
}

// Start регистрирует задачи и запускает планировщик.
func (s *Scheduler) Start(ctx context.Context) error {
	// чистка счетчиков кликов сразу после полуночи UTC, когда сменился ключ лимита.
	if _, err := s.cron.AddFunc("5 0 * * *", func() {
		cutoff := time.Now().UTC().Add(-clicksRetention)
		purged, err := s.gameService.PurgeClicksBefore(ctx, cutoff)
		if err != nil {
			s.l.WithError(err).Error("purging daily clicks")
			return
		}
		s.l.WithField("purged", purged).Info("daily clicks purged")
	}); err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := s.cron.AddFunc("*/5 * * * *", func() {
		failed, err := s.walletService.FailStaleDeposits(ctx, staleDepositAge)
		if err != nil {
			s.l.WithError(err).Error("failing stale deposits")
			return
		}
		if failed > 0 {
			s.l.WithField("failed", failed).Info("stale deposits failed")
		}
	}); err != nil {
		return err //nolint:wrapcheck
	}

	s.cron.Start()
	s.l.Info("Scheduler started")
	return nil
}

// Stop останавливает планировщик, дожидаясь завершения запущенных задач.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.l.Info("Scheduler stopped")
}
