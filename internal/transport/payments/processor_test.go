package payments

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/client"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, s.mockHTTPClient, logger)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoDeposits тест на случай, когда опрашивать нечего.
func (s *ProcessorTestSuite) TestProcess_NoDeposits() {
	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.Transaction{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoDeposits)
}

// TestProcess_Success подтвержденный депозит зачисляется, просроченный проваливается.
func (s *ProcessorTestSuite) TestProcess_Success() {
	amount := decimal.NewFromInt(50)
	deposits := []domain.Transaction{
		{
			ID:        1,
			CreatedAt: time.Now(),
			UserID:    100,
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusPending,
			TrackID:   "track-paid",
		}, {
			ID:        2,
			CreatedAt: time.Now(),
			UserID:    101,
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusPending,
			TrackID:   "track-expired",
		},
	}

	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits, nil)

	s.mockHTTPClient.EXPECT().
		InquirePayment(gomock.Any(), "track-paid").
		Return(&client.InquiryResponse{Status: client.StatusPaid, Amount: amount}, nil)
	s.mockHTTPClient.EXPECT().
		InquirePayment(gomock.Any(), "track-expired").
		Return(&client.InquiryResponse{Status: client.StatusExpired}, nil)

	s.mockService.EXPECT().
		ConfirmDeposit(gomock.Any(), "track-paid", amount).
		Return(&domain.Transaction{ID: 1, Status: domain.TransactionStatusCompleted}, nil)
	s.mockService.EXPECT().
		FailDeposit(gomock.Any(), "track-expired").
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_AlreadyProcessed повторное подтверждение уже обработанного депозита
// не считается ошибкой итерации.
func (s *ProcessorTestSuite) TestProcess_AlreadyProcessed() {
	amount := decimal.NewFromInt(50)
	deposits := []domain.Transaction{
		{
			ID:        1,
			CreatedAt: time.Now(),
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusPending,
			TrackID:   "track-paid",
		},
	}

	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits, nil)

	s.mockHTTPClient.EXPECT().
		InquirePayment(gomock.Any(), "track-paid").
		Return(&client.InquiryResponse{Status: client.StatusPaid, Amount: amount}, nil)

	s.mockService.EXPECT().
		ConfirmDeposit(gomock.Any(), "track-paid", amount).
		Return(nil, domain.ErrRecordNotFound)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_WaitingDeposits свежий неподтвержденный депозит остается ждать,
// превысивший TTL проваливается.
func (s *ProcessorTestSuite) TestProcess_WaitingDeposits() {
	deposits := []domain.Transaction{
		{
			ID:        1,
			CreatedAt: time.Now(),
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusPending,
			TrackID:   "track-fresh",
		}, {
			ID:        2,
			CreatedAt: time.Now().Add(-s.processor.depositTTL - time.Minute),
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusPending,
			TrackID:   "track-stale",
		},
	}

	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits, nil)

	s.mockHTTPClient.EXPECT().
		InquirePayment(gomock.Any(), "track-fresh").
		Return(&client.InquiryResponse{Status: client.StatusWaiting}, nil)
	s.mockHTTPClient.EXPECT().
		InquirePayment(gomock.Any(), "track-stale").
		Return(&client.InquiryResponse{Status: client.StatusConfirming}, nil)

	// для свежего депозита сервисный слой не дергается вовсе.
	s.mockService.EXPECT().
		FailDeposit(gomock.Any(), "track-stale").
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_InquiryError ошибка опроса платежной системы не трогает депозит.
func (s *ProcessorTestSuite) TestProcess_InquiryError() {
	deposits := []domain.Transaction{
		{
			ID:        1,
			CreatedAt: time.Now(),
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusPending,
			TrackID:   "track-1",
		},
	}

	s.mockService.EXPECT().
		PendingDeposits(gomock.Any(), s.processor.limitPerIteration).
		Return(deposits, nil)

	s.mockHTTPClient.EXPECT().
		InquirePayment(gomock.Any(), "track-1").
		Return(nil, client.NewAPIError(103, "payment not found"))

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}
