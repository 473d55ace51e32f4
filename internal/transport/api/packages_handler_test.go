package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/logger"
	"github.com/borislavgotsev27/pepeplay/internal/service/tokens"
	"github.com/borislavgotsev27/pepeplay/internal/transport/api/mocks"
	"github.com/borislavgotsev27/pepeplay/internal/transport/api/testutils"
)

type PackagesHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPackageService *mocks.MockPackageServicer
	jwtSecret          []byte
	jwtToken           string
	currentUserID      int64
}

func TestPackagesHandlerSuite(t *testing.T) {
	suite.Run(t, new(PackagesHandlerTestSuite))
}

func (s *PackagesHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockPackageService = mocks.NewMockPackageServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.currentUserID = 1

	var tokenErr error
	s.jwtToken, tokenErr = tokens.GenerateUserJWT(s.currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		PackageService: s.mockPackageService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *PackagesHandlerTestSuite) TestIndex() {
	s.mockPackageService.EXPECT().
		List(gomock.Any()).
		Return([]domain.Package{
			{ID: 1, Name: "Starter", Amount: decimal.NewFromInt(25), IsActive: true},
			{ID: 2, Name: "Silver", Amount: decimal.NewFromInt(100), BonusPercent: decimal.NewFromInt(5), IsActive: true},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + PackagesRoute,
	}, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.jwtToken)))
	s.Require().NoError(err)

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var response []PackageResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Require().Len(response, 2)
	s.Equal("Starter", response[0].Name)
	s.InDelta(5.0, response[1].BonusPercent, 0.0001)
}

func (s *PackagesHandlerTestSuite) TestPurchase() {
	s.mockPackageService.EXPECT().
		Purchase(gomock.Any(), s.currentUserID, int64(2)).
		Return(&domain.UserPackage{
			ID:          1,
			CreatedAt:   time.Now(),
			UserID:      s.currentUserID,
			PackageID:   2,
			Amount:      decimal.NewFromInt(100),
			BonusAmount: decimal.NewFromInt(5),
			Status:      domain.TransactionStatusCompleted,
		}, nil).Times(1)
	s.mockPackageService.EXPECT().
		Purchase(gomock.Any(), s.currentUserID, int64(99)).
		Return(nil, domain.ErrPackageUnavailable).Times(1)
	s.mockPackageService.EXPECT().
		Purchase(gomock.Any(), s.currentUserID, int64(3)).
		Return(nil, domain.NewInsufficientBalanceError(decimal.NewFromInt(250), decimal.NewFromInt(10))).
		Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{name: "all ok", payload: []byte(`{"package_id": 2}`), wantStatus: http.StatusCreated},
		{name: "unknown package", payload: []byte(`{"package_id": 99}`), wantStatus: http.StatusUnprocessableEntity},
		{name: "not enough balance", payload: []byte(`{"package_id": 3}`), wantStatus: http.StatusPaymentRequired},
		{name: "missing package id", payload: []byte(`{}`), wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PackagePurchaseRoute,
				Body:   bytes.NewReader(t.payload),
			},
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.jwtToken)),
				testutils.WithHeader("Content-Type", "application/json"),
			)
			s.Require().NoError(err)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PackagesHandlerTestSuite) TestUserIndex() {
	s.mockPackageService.EXPECT().
		UserPackages(gomock.Any(), s.currentUserID).
		Return([]domain.UserPackage{}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + UserPackagesRoute,
	}, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.jwtToken)))
	s.Require().NoError(err)

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusNoContent, res.StatusCode)
}
