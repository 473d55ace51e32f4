package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
)

var (
	// MinWithdrawalAmount минимальная сумма вывода в долларах.
	MinWithdrawalAmount = decimal.NewFromInt(10)
	// WithdrawalFeePercent комиссия за вывод в процентах от суммы.
	WithdrawalFeePercent = decimal.NewFromInt(2)
)

type WalletService struct {
	uow             uow.UOW
	userRepo        UserRepository
	transactionRepo TransactionRepository
	gateway         PaymentGateway
}

func NewWalletService(u uow.UOW, gateway PaymentGateway) (*WalletService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	rName := uow.RepositoryName(repoargs.TransactionRepoName)
	transactionRepo, transactionRepoErr := uow.GetRepositoryAs[TransactionRepository](u, rName)
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &WalletService{
		uow:             u,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		gateway:         gateway,
	}, nil
}

// CreateDeposit запрашивает у платежной системы адрес под депозит и создает pending
// транзакцию с ее track id. Зачисление на баланс произойдет позже, когда фоновый
// вочер увидит подтверждение платежа.
func (s *WalletService) CreateDeposit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	wallet, walletErr := s.gateway.CreateDepositWallet(ctx, amount)
	if walletErr != nil {
		return nil, fmt.Errorf("creating deposit: %w", walletErr)
	}

	transaction, createErr := s.transactionRepo.Create(ctx, repoargs.CreateTransaction{
		UserID:        userID,
		Type:          domain.TransactionTypeDeposit,
		Amount:        amount,
		Status:        domain.TransactionStatusPending,
		TrackID:       wallet.TrackID,
		WalletAddress: wallet.Address,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating deposit: %w", createErr)
	}
	return transaction, nil
}

// ConfirmDeposit зачисляет подтвержденный платежной системой депозит. Перевод статуса
// pending -> completed и пополнение баланса выполняются в одной транзакции базы;
// повторное подтверждение того же track id вернет domain.ErrRecordNotFound и баланс
// не изменит.
func (s *WalletService) ConfirmDeposit(
	ctx context.Context,
	trackID string,
	amount decimal.Decimal,
) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		var completeErr error
		transaction, completeErr = transactionRepo.CompletePendingDeposit(c, trackID, amount)
		if completeErr != nil {
			return completeErr //nolint:wrapcheck
		}

		if _, err := userRepo.CreditBalance(c, transaction.UserID, amount); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecordNotFound) {
			return nil, txErr
		}
		return nil, fmt.Errorf("confirming deposit %s: %w", trackID, txErr)
	}
	return transaction, nil
}

// FailDeposit помечает неподтвержденный депозит как проваленный.
func (s *WalletService) FailDeposit(ctx context.Context, trackID string) error {
	if err := s.transactionRepo.FailPendingDeposit(ctx, trackID); err != nil {
		return fmt.Errorf("failing deposit %s: %w", trackID, err)
	}
	return nil
}

// PendingDeposits возвращает неподтвержденные депозиты для фонового опроса.
func (s *WalletService) PendingDeposits(ctx context.Context, limit uint) ([]domain.Transaction, error) {
	deposits, err := s.transactionRepo.GetPendingDeposits(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return deposits, nil
}

// FailStaleDeposits помечает проваленными pending депозиты старше olderThan.
func (s *WalletService) FailStaleDeposits(ctx context.Context, olderThan time.Duration) (int64, error) {
	failed, err := s.transactionRepo.FailPendingDepositsBefore(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return failed, nil
}

// DepositStatus возвращает депозит юзера по track id. По pending депозиту дополнительно
// опрашивает платежную систему: оплаченный депозит зачисляется прямо здесь, не дожидаясь
// следующего круга фонового вочера. Чужой track id неотличим от несуществующего: в обоих
// случаях вернется domain.ErrRecordNotFound.
func (s *WalletService) DepositStatus(ctx context.Context, userID int64, trackID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindByTrackID(ctx, trackID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if transaction.UserID != userID || transaction.Type != domain.TransactionTypeDeposit {
		return nil, domain.ErrRecordNotFound
	}
	if transaction.Status != domain.TransactionStatusPending {
		return transaction, nil
	}

	check, checkErr := s.gateway.CheckDeposit(ctx, trackID)
	if checkErr != nil {
		return nil, fmt.Errorf("checking deposit %s: %w", trackID, checkErr)
	}
	if !check.Paid {
		return transaction, nil
	}

	confirmed, confirmErr := s.ConfirmDeposit(ctx, trackID, check.Amount)
	if confirmErr != nil {
		// вочер зачислил первым: перечитываем уже завершенную запись.
		if errors.Is(confirmErr, domain.ErrRecordNotFound) {
			return s.transactionRepo.FindByTrackID(ctx, trackID) //nolint:wrapcheck
		}
		return nil, confirmErr
	}
	return confirmed, nil
}

// Withdraw выводит amount на кошелек walletAddress. С баланса списывается сумма с
// комиссией WithdrawalFeePercent, на кошелек уходит amount.
//
// Алгоритм работы:
//  1. Проверка минимальной суммы и предварительная проверка баланса - чтобы не
//     дергать платежную систему при заведомо недостаточных средствах.
//  2. Выплата через платежную систему.
//  3. Условное списание (база сама проверяет balance >= total) и запись транзакции
//     withdrawal в одной транзакции базы.
func (s *WalletService) Withdraw(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	walletAddress string,
) (*domain.Transaction, error) {
	if amount.LessThan(MinWithdrawalAmount) {
		return nil, domain.NewBelowMinimumError(MinWithdrawalAmount)
	}

	fee := amount.Mul(WithdrawalFeePercent).Div(oneHundred)
	total := amount.Add(fee)

	user, userErr := s.userRepo.FindUserByID(ctx, userID)
	if userErr != nil {
		return nil, fmt.Errorf("withdrawing: %w", userErr)
	}
	if user.Balance.LessThan(total) {
		return nil, domain.NewInsufficientBalanceError(total, user.Balance)
	}

	trackID, payoutErr := s.gateway.CreatePayout(ctx, walletAddress, amount)
	if payoutErr != nil {
		return nil, fmt.Errorf("withdrawing: %w", payoutErr)
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}

		if _, debitErr := userRepo.DebitBalance(c, userID, total); debitErr != nil {
			if errors.Is(debitErr, domain.ErrNotEnoughBalance) {
				return domain.NewInsufficientBalanceError(total, user.Balance)
			}
			return debitErr //nolint:wrapcheck
		}

		var createErr error
		transaction, createErr = transactionRepo.Create(c, repoargs.CreateTransaction{
			UserID:        userID,
			Type:          domain.TransactionTypeWithdrawal,
			Amount:        amount,
			Fee:           fee,
			Status:        domain.TransactionStatusCompleted,
			TrackID:       trackID,
			WalletAddress: walletAddress,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		var insufficientErr *domain.InsufficientBalanceError
		if errors.As(txErr, &insufficientErr) {
			return nil, insufficientErr
		}
		return nil, fmt.Errorf("withdrawing: %w", txErr)
	}
	return transaction, nil
}

// Transactions возвращает историю операций юзера, от новых к старым.
func (s *WalletService) Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}
