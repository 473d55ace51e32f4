// Package payments работает с внешней криптоплатежной системой: выдает адреса под
// депозиты, отправляет выплаты и фоново доводит pending депозиты до терминального статуса.
package payments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/client"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultLimitPerIteration uint = 100
	defaultDepositWorkers    uint = 10
	defaultPollInterval           = 10 * time.Second

	// defaultDepositTTL время, которое депозиту дается на подтверждение. Неподтвержденный
	// за это время депозит помечается проваленным.
	defaultDepositTTL = 5 * time.Minute
)

// Processor фоновый вочер депозитов: опрашивает платежную систему по каждому pending
// депозиту и через сервисный слой зачисляет подтвержденные и проваливает просроченные.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	depositWorkers    uint
	pollInterval      time.Duration
	depositTTL        time.Duration
}

// New создает новый экземпляр вочера депозитов.
func New(svs Servicer, c Client, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "payments",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            c,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		depositWorkers:    defaultDepositWorkers,
		pollInterval:      defaultPollInterval,
		depositTTL:        defaultDepositTTL,
	}
}

// SetLimitPerIteration устанавливает кол-во депозитов, обрабатываемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetDepositWorkers устанавливает кол-во воркеров, опрашивающих платежную систему.
func (p *Processor) SetDepositWorkers(workers uint) *Processor {
	p.depositWorkers = workers
	return p
}

// SetPollInterval устанавливает паузу между итерациями опроса.
func (p *Processor) SetPollInterval(interval time.Duration) *Processor {
	p.pollInterval = interval
	return p
}

// SetDepositTTL устанавливает время жизни неподтвержденного депозита.
func (p *Processor) SetDepositTTL(ttl time.Duration) *Processor {
	p.depositTTL = ttl
	return p
}

// Run запускает опрос депозитов в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации цикла запрашивает через сервисный слой список pending депозитов.
//     Объем списка лимитируется через SetLimitPerIteration.
//  2. Для каждой итерации создаются N воркеров (кол-во настраивается через
//     SetDepositWorkers), которые опрашивают платежную систему по track id депозита.
//  3. Подтвержденные депозиты зачисляются, просроченные проваливаются через сервисный слой.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"depositWorkers":    p.depositWorkers,
		"pollInterval":      p.pollInterval.String(),
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoDeposits) {
				p.l.WithError(err).Error("process error")
			}
			p.sleep(ctx, p.pollInterval)
		}
	}
}

// sleep ждет d или отмену контекста, смотря что наступит раньше.
func (p *Processor) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// process выполняет одну итерацию: получение списка депозитов, опрос платежной системы
// и применение результатов. Возвращает ErrNoDeposits если опрашивать нечего.
func (p *Processor) process(ctx context.Context) error {
	deposits, depositsErr := p.produce(ctx)
	if depositsErr != nil {
		return fmt.Errorf("process: %w", depositsErr)
	}

	results := p.runWorkers(ctx, deposits)
	for _, result := range results {
		p.applyResult(ctx, result)
	}
	return nil
}

// applyResult доводит один депозит до нового статуса по результату опроса.
// Зачисление идемпотентно: повторное подтверждение уже обработанного track id
// сервисный слой отвергает, и баланс не меняется.
func (p *Processor) applyResult(ctx context.Context, result workerResult) {
	l := p.l.WithFields(logrus.Fields{
		"trackID": result.Deposit.TrackID,
		"status":  result.Status,
	})

	if result.Error != nil {
		l.WithError(result.Error).Error("inquire deposit")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	switch result.Status {
	case client.StatusPaid:
		if _, err := p.svs.ConfirmDeposit(reqCtx, result.Deposit.TrackID, result.Amount); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				l.Debug("deposit already processed")
				return
			}
			l.WithError(err).Error("confirm deposit")
			return
		}
		l.WithField("amount", result.Amount).Info("deposit confirmed")
	case client.StatusExpired:
		if err := p.svs.FailDeposit(reqCtx, result.Deposit.TrackID); err != nil {
			l.WithError(err).Error("fail deposit")
			return
		}
		l.Info("deposit expired")
	case client.StatusWaiting, client.StatusConfirming:
		if time.Since(result.Deposit.CreatedAt) > p.depositTTL {
			if err := p.svs.FailDeposit(reqCtx, result.Deposit.TrackID); err != nil {
				l.WithError(err).Error("fail stale deposit")
				return
			}
			l.Info("deposit timed out")
		}
	default:
		l.Warn("unknown deposit status")
	}
}

// workerResult результат опроса одного депозита.
type workerResult struct {
	WorkerID uint
	Deposit  *domain.Transaction
	Error    error
	Status   client.PaymentStatus
	Amount   decimal.Decimal
}

// runWorkers запускает параллельных воркеров для опроса платежной системы и ожидает
// конца их работы. Реализует паттерн fan-out/fan-in.
func (p *Processor) runWorkers(ctx context.Context, deposits []domain.Transaction) []workerResult {
	var taskCh = make(chan *domain.Transaction, len(deposits))

	for _, deposit := range deposits {
		taskCh <- &deposit
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.depositWorkers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(deposits))

	for i := range p.depositWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(deposits))
	for result := range resultCh {
		results = append(results, *result)
	}
	return results
}

// worker опрашивает депозиты из канала и отправляет результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Transaction,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *domain.Transaction) *workerResult {
	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	defer cancel()

	resp, err := p.client.InquirePayment(reqCtx, task.TrackID)
	if err != nil {
		return &workerResult{
			WorkerID: workerID,
			Deposit:  task,
			Error:    err,
		}
	}

	return &workerResult{
		WorkerID: workerID,
		Deposit:  task,
		Status:   resp.Status,
		Amount:   resp.Amount,
	}
}

// produce получает список pending депозитов для опроса.
// Возвращает ErrNoDeposits, если депозиты отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]domain.Transaction, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	deposits, depositsErr := p.svs.PendingDeposits(produceCtx, p.limitPerIteration)
	if depositsErr != nil {
		return nil, fmt.Errorf("produce: %w", depositsErr)
	}

	if len(deposits) == 0 {
		return nil, ErrNoDeposits
	}
	return deposits, nil
}
