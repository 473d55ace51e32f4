package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/internal/service/mocks"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
	uowmocks "github.com/borislavgotsev27/pepeplay/pkg/uow/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockClicksRepo      *mocks.MockDailyClicksRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockUserRepo        *mocks.MockUserRepository
	mockDistributor     *mocks.MockReferralDistributor
	service             *GameService
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockClicksRepo = mocks.NewMockDailyClicksRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockDistributor = mocks.NewMockReferralDistributor(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.DailyClicksRepoName)).
		Return(s.mockClicksRepo, nil).AnyTimes()

	var err error
	s.service, err = NewGameService(s.mockUOW, s.mockDistributor)
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// настраивает mockTX на выдачу всех репозиториев, нужных RecordEarning.
func (s *GameServiceTestSuite) expectTXRepos() {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.DailyClicksRepoName)).
		Return(s.mockClicksRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil)
}

func (s *GameServiceTestSuite) expectUOWDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
}

func (s *GameServiceTestSuite) TestRecordEarning() {
	var userID int64 = 123
	var score int64 = 1250
	amount := decimal.NewFromFloat(0.55)
	balance := decimal.NewFromFloat(10.55)
	totalEarnings := decimal.NewFromFloat(20.55)

	expected := domain.Transaction{
		ID:        1,
		CreatedAt: time.Now(),
		UserID:    userID,
		Type:      domain.TransactionTypeGameEarning,
		Amount:    amount,
		Status:    domain.TransactionStatusCompleted,
	}

	s.expectUOWDo()
	s.expectTXRepos()

	s.mockClicksRepo.EXPECT().
		Increment(gomock.Any(), userID, gomock.Any(), domain.MaxDailyClicks).
		Return(int32(1), nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(userID, args.UserID)
			s.Equal(domain.TransactionTypeGameEarning, args.Type)
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			s.Equal("Game score: 1250", args.Notes)
			s.True(amount.Equal(args.Amount))
			return &expected, nil
		})

	s.mockUserRepo.EXPECT().AddEarnings(gomock.Any(), userID, amount).
		Return(&domain.User{ID: userID, Balance: balance, TotalEarnings: totalEarnings}, nil)

	// бонусы раздаются только после успешного коммита.
	s.mockDistributor.EXPECT().Distribute(gomock.Any(), userID, amount).Times(1)

	result, err := s.service.RecordEarning(s.T().Context(), userID, score, amount)
	s.Require().NoError(err)
	s.Equal(expected.ID, result.Transaction.ID)
	s.True(expected.Amount.Equal(result.Transaction.Amount))
	// юзеру отдается баланс после зачисления.
	s.True(balance.Equal(result.Balance))
	s.True(totalEarnings.Equal(result.TotalEarnings))
}

func (s *GameServiceTestSuite) TestRecordEarning_InvalidAmount() {
	cases := []struct {
		name   string
		amount decimal.Decimal
	}{
		{name: "zero", amount: decimal.Zero},
		{name: "negative", amount: decimal.NewFromInt(-1)},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			// ни транзакции базы, ни раздачи бонусов быть не должно.
			result, err := s.service.RecordEarning(s.T().Context(), 123, 100, t.amount)
			s.Require().ErrorIs(err, domain.ErrInvalidAmount)
			s.Nil(result)
		})
	}
}

func (s *GameServiceTestSuite) TestRecordEarning_DailyLimitReached() {
	var userID int64 = 123

	s.expectUOWDo()
	s.expectTXRepos()

	s.mockClicksRepo.EXPECT().
		Increment(gomock.Any(), userID, gomock.Any(), domain.MaxDailyClicks).
		Return(int32(0), domain.ErrDailyLimitReached)

	result, err := s.service.RecordEarning(s.T().Context(), userID, 100, decimal.NewFromInt(1))
	s.Require().ErrorIs(err, domain.ErrDailyLimitReached)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestClicksToday() {
	var userID int64 = 123

	s.mockClicksRepo.EXPECT().Get(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, day time.Time) (*domain.DailyClicks, error) {
			// счетчик ключуется календарными сутками UTC.
			s.Equal(time.UTC, day.Location())
			s.Equal(0, day.Hour())
			return &domain.DailyClicks{UserID: id, ClickDate: day, Clicks: 2}, nil
		})

	clicks, err := s.service.ClicksToday(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(int32(2), clicks.Clicks)
}

func (s *GameServiceTestSuite) TestPurgeClicksBefore() {
	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)

	s.mockClicksRepo.EXPECT().PurgeBefore(gomock.Any(), cutoff).Return(int64(5), nil)

	purged, err := s.service.PurgeClicksBefore(s.T().Context(), cutoff)
	s.Require().NoError(err)
	s.Equal(int64(5), purged)
}
