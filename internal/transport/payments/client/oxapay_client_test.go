package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) newClient() HTTPClient {
	return New(s.server.URL, "merchant-key", "payout-key")
}

func (s *ClientTestSuite) TestRequestPayment() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RoutePaymentRequest, r.URL.Path)

		// убеждаемся что депозит авторизован мерчант-ключом и валюта всегда USDT.
		var body paymentRequestBody
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("merchant-key", body.Merchant)
		s.Equal(Currency, body.Currency)
		s.Equal("50", body.Amount)

		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(paymentRequestResponse{
			Result:  100,
			TrackID: "track-1",
			Address: "TDepositAddr1",
		}))
	}))

	response, err := s.newClient().RequestPayment(s.T().Context(), decimal.NewFromInt(50))
	s.Require().NoError(err)
	s.Equal("track-1", response.TrackID)
	s.Equal("TDepositAddr1", response.Address)
}

func (s *ClientTestSuite) TestRequestPayment_APIError() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(paymentRequestResponse{
			Result:  101,
			Message: "invalid merchant",
		}))
	}))

	_, err := s.newClient().RequestPayment(s.T().Context(), decimal.NewFromInt(50))

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(101, apiErr.Result)
}

func (s *ClientTestSuite) TestInquirePayment() {
	cases := []struct {
		name       string
		trackID    string
		httpStatus int
		response   paymentInquiryResponse
		wantStatus PaymentStatus
		wantErr    error
	}{
		{
			name:       "paid",
			trackID:    "track-paid",
			httpStatus: http.StatusOK,
			response: paymentInquiryResponse{
				Result: 100,
				Status: StatusPaid,
				Amount: decimal.NewFromInt(50),
			},
			wantStatus: StatusPaid,
		}, {
			name:       "waiting",
			trackID:    "track-waiting",
			httpStatus: http.StatusOK,
			response:   paymentInquiryResponse{Result: 100, Status: StatusWaiting},
			wantStatus: StatusWaiting,
		}, {
			name:       "api error",
			trackID:    "track-unknown",
			httpStatus: http.StatusOK,
			response:   paymentInquiryResponse{Result: 103, Message: "payment not found"},
			wantErr:    new(APIError),
		}, {
			name:       "server error",
			trackID:    "track-any",
			httpStatus: http.StatusInternalServerError,
			wantErr:    new(StatusCodeError),
		},
	}

	responses := make(map[string]paymentInquiryResponse, len(cases))
	statuses := make(map[string]int, len(cases))
	for _, t := range cases {
		responses[t.trackID] = t.response
		statuses[t.trackID] = t.httpStatus
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RoutePaymentInquiry, r.URL.Path)

		var body paymentInquiryBody
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("merchant-key", body.Merchant)

		if statuses[body.TrackID] != http.StatusOK {
			w.WriteHeader(statuses[body.TrackID])
			return
		}
		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(responses[body.TrackID]))
	}))

	for _, t := range cases {
		s.Run(t.name, func() {
			response, err := s.newClient().InquirePayment(s.T().Context(), t.trackID)

			if t.wantErr != nil {
				s.Require().Error(err)
				s.Require().ErrorAs(err, &t.wantErr) //nolint:testifylint
				return
			}
			s.Require().NoError(err)
			s.Equal(t.wantStatus, response.Status)
		})
	}
}

func (s *ClientTestSuite) TestCreatePayout() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RoutePayout, r.URL.Path)

		// выплаты авторизуются отдельным payout-ключом.
		var body payoutBody
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("payout-key", body.Key)
		s.Equal("TPayoutAddr1", body.Address)
		s.Equal(Currency, body.Currency)

		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(payoutResponse{
			Result:  100,
			TrackID: "payout-1",
		}))
	}))

	response, err := s.newClient().CreatePayout(s.T().Context(), "TPayoutAddr1", decimal.NewFromInt(50))
	s.Require().NoError(err)
	s.Equal("payout-1", response.TrackID)
}
