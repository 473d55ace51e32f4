package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/internal/service/mocks"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
	uowmocks "github.com/borislavgotsev27/pepeplay/pkg/uow/mocks"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockUserRepo        *mocks.MockUserRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockGateway         *mocks.MockPaymentGateway
	service             *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockGateway = mocks.NewMockPaymentGateway(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	var err error
	s.service, err = NewWalletService(s.mockUOW, s.mockGateway)
	s.Require().NoError(err)
}

func (s *WalletServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WalletServiceTestSuite) expectUOWDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
}

func (s *WalletServiceTestSuite) TestCreateDeposit() {
	var userID int64 = 123
	amount := decimal.NewFromInt(50)

	s.mockGateway.EXPECT().CreateDepositWallet(gomock.Any(), amount).
		Return(&domain.DepositWallet{Address: "TDepositAddr1", TrackID: "track-1"}, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(userID, args.UserID)
			s.Equal(domain.TransactionTypeDeposit, args.Type)
			s.Equal(domain.TransactionStatusPending, args.Status)
			s.Equal("track-1", args.TrackID)
			s.Equal("TDepositAddr1", args.WalletAddress)
			return &domain.Transaction{
				ID:      1,
				UserID:  userID,
				Type:    args.Type,
				Amount:  args.Amount,
				Status:  args.Status,
				TrackID: args.TrackID,
			}, nil
		})

	transaction, err := s.service.CreateDeposit(s.T().Context(), userID, amount)
	s.Require().NoError(err)
	s.Equal("track-1", transaction.TrackID)
	s.Equal(domain.TransactionStatusPending, transaction.Status)
}

func (s *WalletServiceTestSuite) TestConfirmDeposit() {
	amount := decimal.NewFromInt(50)
	deposit := domain.Transaction{
		ID:      1,
		UserID:  123,
		Type:    domain.TransactionTypeDeposit,
		Amount:  amount,
		Status:  domain.TransactionStatusCompleted,
		TrackID: "track-1",
	}

	s.expectUOWDo()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil)

	s.mockTransactionRepo.EXPECT().CompletePendingDeposit(gomock.Any(), "track-1", amount).
		Return(&deposit, nil)
	s.mockUserRepo.EXPECT().CreditBalance(gomock.Any(), deposit.UserID, amount).
		Return(&domain.User{ID: deposit.UserID, Balance: amount}, nil)

	transaction, err := s.service.ConfirmDeposit(s.T().Context(), "track-1", amount)
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusCompleted, transaction.Status)
}

func (s *WalletServiceTestSuite) TestConfirmDeposit_AlreadyProcessed() {
	amount := decimal.NewFromInt(50)

	s.expectUOWDo()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil)

	// депозит уже в терминальном статусе: повторное зачисление невозможно,
	// CreditBalance вызываться не должен.
	s.mockTransactionRepo.EXPECT().CompletePendingDeposit(gomock.Any(), "track-1", amount).
		Return(nil, domain.ErrRecordNotFound)

	transaction, err := s.service.ConfirmDeposit(s.T().Context(), "track-1", amount)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Nil(transaction)
}

func (s *WalletServiceTestSuite) TestDepositStatus_ForeignTrackID() {
	s.mockTransactionRepo.EXPECT().FindByTrackID(gomock.Any(), "track-1").
		Return(&domain.Transaction{
			ID:      1,
			UserID:  123,
			Type:    domain.TransactionTypeDeposit,
			Status:  domain.TransactionStatusCompleted,
			TrackID: "track-1",
		}, nil).Times(2)

	// владелец видит депозит; платежная система по завершенному не опрашивается.
	transaction, err := s.service.DepositStatus(s.T().Context(), 123, "track-1")
	s.Require().NoError(err)
	s.Equal("track-1", transaction.TrackID)

	// чужой track id неотличим от несуществующего.
	_, foreignErr := s.service.DepositStatus(s.T().Context(), 456, "track-1")
	s.Require().ErrorIs(foreignErr, domain.ErrRecordNotFound)
}

func (s *WalletServiceTestSuite) TestDepositStatus_PendingPaidConfirms() {
	amount := decimal.NewFromInt(50)
	pending := domain.Transaction{
		ID:      1,
		UserID:  123,
		Type:    domain.TransactionTypeDeposit,
		Amount:  amount,
		Status:  domain.TransactionStatusPending,
		TrackID: "track-1",
	}
	completed := pending
	completed.Status = domain.TransactionStatusCompleted

	s.mockTransactionRepo.EXPECT().FindByTrackID(gomock.Any(), "track-1").
		Return(&pending, nil)

	// pending депозит, который платежная система уже видит оплаченным, зачисляется
	// прямо в запросе статуса, без ожидания фонового вочера.
	s.mockGateway.EXPECT().CheckDeposit(gomock.Any(), "track-1").
		Return(&domain.DepositCheck{Paid: true, Amount: amount}, nil)

	s.expectUOWDo()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil)

	s.mockTransactionRepo.EXPECT().CompletePendingDeposit(gomock.Any(), "track-1", amount).
		Return(&completed, nil)
	s.mockUserRepo.EXPECT().CreditBalance(gomock.Any(), pending.UserID, amount).
		Return(&domain.User{ID: pending.UserID, Balance: amount}, nil)

	transaction, err := s.service.DepositStatus(s.T().Context(), 123, "track-1")
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusCompleted, transaction.Status)
}

func (s *WalletServiceTestSuite) TestDepositStatus_PendingUnpaid() {
	pending := domain.Transaction{
		ID:      1,
		UserID:  123,
		Type:    domain.TransactionTypeDeposit,
		Status:  domain.TransactionStatusPending,
		TrackID: "track-1",
	}

	s.mockTransactionRepo.EXPECT().FindByTrackID(gomock.Any(), "track-1").
		Return(&pending, nil)

	// платеж еще не подтвержден: депозит остается pending, зачисления нет.
	s.mockGateway.EXPECT().CheckDeposit(gomock.Any(), "track-1").
		Return(&domain.DepositCheck{Paid: false}, nil)

	transaction, err := s.service.DepositStatus(s.T().Context(), 123, "track-1")
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusPending, transaction.Status)
}

func (s *WalletServiceTestSuite) TestDepositStatus_RaceWithWatcher() {
	amount := decimal.NewFromInt(50)
	pending := domain.Transaction{
		ID:      1,
		UserID:  123,
		Type:    domain.TransactionTypeDeposit,
		Amount:  amount,
		Status:  domain.TransactionStatusPending,
		TrackID: "track-1",
	}
	completed := pending
	completed.Status = domain.TransactionStatusCompleted

	s.mockTransactionRepo.EXPECT().FindByTrackID(gomock.Any(), "track-1").
		Return(&pending, nil).Times(1)

	s.mockGateway.EXPECT().CheckDeposit(gomock.Any(), "track-1").
		Return(&domain.DepositCheck{Paid: true, Amount: amount}, nil)

	s.expectUOWDo()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil)

	// вочер успел зачислить между опросом и подтверждением: повторного
	// CreditBalance нет, юзеру отдается уже завершенная запись.
	s.mockTransactionRepo.EXPECT().CompletePendingDeposit(gomock.Any(), "track-1", amount).
		Return(nil, domain.ErrRecordNotFound)
	s.mockTransactionRepo.EXPECT().FindByTrackID(gomock.Any(), "track-1").
		Return(&completed, nil).Times(1)

	transaction, err := s.service.DepositStatus(s.T().Context(), 123, "track-1")
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusCompleted, transaction.Status)
}

func (s *WalletServiceTestSuite) TestWithdraw() {
	var userID int64 = 123
	amount := decimal.NewFromInt(50)
	fee := decimal.NewFromInt(1)    // 2% от 50
	total := decimal.NewFromInt(51) // списывается сумма с комиссией

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(60)}, nil)

	s.mockGateway.EXPECT().CreatePayout(gomock.Any(), "TPayoutAddr1", amount).
		Return("payout-1", nil)

	s.expectUOWDo()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil)

	s.mockUserRepo.EXPECT().DebitBalance(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, debit decimal.Decimal) (*domain.User, error) {
			s.True(total.Equal(debit), "want debit %s got %s", total, debit)
			return &domain.User{ID: userID, Balance: decimal.NewFromInt(9)}, nil
		})

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(domain.TransactionTypeWithdrawal, args.Type)
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			s.Equal("payout-1", args.TrackID)
			s.Equal("TPayoutAddr1", args.WalletAddress)
			s.True(amount.Equal(args.Amount))
			s.True(fee.Equal(args.Fee))
			return &domain.Transaction{ID: 1, Amount: args.Amount, Fee: args.Fee, TrackID: args.TrackID}, nil
		})

	transaction, err := s.service.Withdraw(s.T().Context(), userID, amount, "TPayoutAddr1")
	s.Require().NoError(err)
	s.Equal("payout-1", transaction.TrackID)
}

func (s *WalletServiceTestSuite) TestWithdraw_BelowMinimum() {
	_, err := s.service.Withdraw(s.T().Context(), 123, decimal.NewFromFloat(9.99), "TPayoutAddr1")

	var belowMinErr *domain.BelowMinimumError
	s.Require().ErrorAs(err, &belowMinErr)
	s.True(MinWithdrawalAmount.Equal(belowMinErr.Minimum))
}

func (s *WalletServiceTestSuite) TestWithdraw_NotEnoughForFee() {
	var userID int64 = 123
	amount := decimal.NewFromInt(50)

	// баланса хватает на сумму, но не на сумму с комиссией: до платежной системы
	// дело дойти не должно.
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Balance: decimal.NewFromFloat(50.99)}, nil)

	_, err := s.service.Withdraw(s.T().Context(), userID, amount, "TPayoutAddr1")

	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)

	var insufficientErr *domain.InsufficientBalanceError
	s.Require().ErrorAs(err, &insufficientErr)
	s.True(decimal.NewFromInt(51).Equal(insufficientErr.Required))
}

func (s *WalletServiceTestSuite) TestWithdraw_ConcurrentDebitLoses() {
	var userID int64 = 123
	amount := decimal.NewFromInt(50)

	// предварительная проверка проходит, но к моменту списания баланс уже потрачен
	// конкурентной операцией.
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(60)}, nil)

	s.mockGateway.EXPECT().CreatePayout(gomock.Any(), "TPayoutAddr1", amount).
		Return("payout-1", nil)

	s.expectUOWDo()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil)

	s.mockUserRepo.EXPECT().DebitBalance(gomock.Any(), userID, gomock.Any()).
		Return(nil, domain.ErrNotEnoughBalance)

	_, err := s.service.Withdraw(s.T().Context(), userID, amount, "TPayoutAddr1")
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}
