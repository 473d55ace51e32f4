package payments

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/client"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/mocks"
)

type GatewayTestSuite struct {
	suite.Suite
	gateway        *Gateway
	mockHTTPClient *mocks.MockClient
	ctrl           *gomock.Controller
}

func (s *GatewayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.gateway = NewGateway(s.mockHTTPClient)
}

func (s *GatewayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

// TestCheckDeposit оплаченным считается только статус Paid; промежуточные статусы
// не дают зачисления.
func (s *GatewayTestSuite) TestCheckDeposit() {
	amount := decimal.NewFromInt(50)

	cases := []struct {
		name     string
		status   client.PaymentStatus
		wantPaid bool
	}{
		{name: "paid", status: client.StatusPaid, wantPaid: true},
		{name: "waiting", status: client.StatusWaiting, wantPaid: false},
		{name: "confirming", status: client.StatusConfirming, wantPaid: false},
		{name: "expired", status: client.StatusExpired, wantPaid: false},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockHTTPClient.EXPECT().InquirePayment(gomock.Any(), "track-1").
				Return(&client.InquiryResponse{Status: t.status, Amount: amount}, nil)

			check, err := s.gateway.CheckDeposit(s.T().Context(), "track-1")
			s.Require().NoError(err)
			s.Equal(t.wantPaid, check.Paid)
			s.True(amount.Equal(check.Amount))
		})
	}
}
