package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

type GameService struct {
	uow             uow.UOW
	dailyClicksRepo DailyClicksRepository
	distributor     ReferralDistributor
}

func NewGameService(u uow.UOW, distributor ReferralDistributor) (*GameService, error) {
	rName := uow.RepositoryName(repoargs.DailyClicksRepoName)
	dailyClicksRepo, dailyClicksRepoErr := uow.GetRepositoryAs[DailyClicksRepository](u, rName)
	if dailyClicksRepoErr != nil {
		return nil, dailyClicksRepoErr
	}
	return &GameService{
		uow:             u,
		dailyClicksRepo: dailyClicksRepo,
		distributor:     distributor,
	}, nil
}

// EarningResult итог записи игрового заработка: созданная транзакция и состояние
// баланса после зачисления.
type EarningResult struct {
	Transaction   *domain.Transaction
	Balance       decimal.Decimal
	TotalEarnings decimal.Decimal
}

// RecordEarning фиксирует игровой заработок юзера за один клик. Игровой счет
// сохраняется в заметке транзакции.
//
// Алгоритм работы:
//  1. В одной транзакции базы: инкремент дневного счетчика кликов (лимит проверяет
//     сама база, при исчерпании вернется domain.ErrDailyLimitReached), запись
//     транзакции game_earning и пополнение баланса.
//  2. После коммита раздаются реферальные бонусы. Их провал заработок не откатывает.
func (s *GameService) RecordEarning(
	ctx context.Context,
	userID int64,
	score int64,
	amount decimal.Decimal,
) (*EarningResult, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	var transaction *domain.Transaction
	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		clicksRepo, clicksRepoErr :=
			uow.GetAs[DailyClicksRepository](tx, uow.RepositoryName(repoargs.DailyClicksRepoName))
		if clicksRepoErr != nil {
			return clicksRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		if _, err := clicksRepo.Increment(c, userID, utcDay(time.Now()), domain.MaxDailyClicks); err != nil {
			return err //nolint:wrapcheck
		}

		var createErr error
		transaction, createErr = transactionRepo.Create(c, repoargs.CreateTransaction{
			UserID: userID,
			Type:   domain.TransactionTypeGameEarning,
			Amount: amount,
			Status: domain.TransactionStatusCompleted,
			Notes:  fmt.Sprintf("Game score: %d", score),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		var addErr error
		user, addErr = userRepo.AddEarnings(c, userID, amount)
		if addErr != nil {
			return addErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("recording game earning: %w", txErr)
	}

	s.distributor.Distribute(ctx, userID, amount)
	return &EarningResult{
		Transaction:   transaction,
		Balance:       user.Balance,
		TotalEarnings: user.TotalEarnings,
	}, nil
}

// ClicksToday возвращает счетчик кликов юзера за текущие сутки (UTC).
func (s *GameService) ClicksToday(ctx context.Context, userID int64) (*domain.DailyClicks, error) {
	clicks, err := s.dailyClicksRepo.Get(ctx, userID, utcDay(time.Now()))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return clicks, nil
}

// PurgeClicksBefore удаляет дневные счетчики старше cutoff. Возвращает число удаленных строк.
func (s *GameService) PurgeClicksBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	purged, err := s.dailyClicksRepo.PurgeBefore(ctx, cutoff)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return purged, nil
}
