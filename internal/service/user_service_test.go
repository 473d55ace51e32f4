package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
	"github.com/borislavgotsev27/pepeplay/internal/service/mocks"
	"github.com/borislavgotsev27/pepeplay/internal/service/refcode"
	"github.com/borislavgotsev27/pepeplay/internal/service/tokens"
	"github.com/borislavgotsev27/pepeplay/pkg/uow"
	uowmocks "github.com/borislavgotsev27/pepeplay/pkg/uow/mocks"
)

var testJWTSecret = []byte("test-secret")

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockUserRepo *mocks.MockUserRepository
	mockHasher   *mocks.MockPasswordHasher
	service      *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockHasher = mocks.NewMockPasswordHasher(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	var err error
	s.service, err = NewUserService(s.mockUOW, s.mockHasher, testJWTSecret)
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) TestRegister() {
	referrer := domain.User{ID: 1, ReferralCode: "REFCODE1"}
	args := RegisterUserArgs{
		Username:     "newuser",
		Password:     "secret",
		ReferralCode: referrer.ReferralCode,
	}

	s.mockUserRepo.EXPECT().FindUserByReferralCode(gomock.Any(), referrer.ReferralCode).
		Return(&referrer, nil)
	s.mockHasher.EXPECT().HashPassword(args.Password).Return("hashed", nil)

	s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateUser) (*domain.User, error) {
			s.Equal(args.Username, createArgs.Username)
			s.Equal("hashed", createArgs.Password)
			s.Require().NotNil(createArgs.ReferredBy)
			s.Equal(referrer.ID, *createArgs.ReferredBy)
			// код генерируется сервисом, а не приходит снаружи.
			s.Len(createArgs.ReferralCode, refcode.Length)
			return &domain.User{
				ID:           2,
				Username:     createArgs.Username,
				ReferralCode: createArgs.ReferralCode,
				ReferredBy:   createArgs.ReferredBy,
			}, nil
		})

	user, token, err := s.service.Register(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(int64(2), user.ID)

	parsed, parseErr := tokens.ValidateUserJWT(token, testJWTSecret)
	s.Require().NoError(parseErr)
	claims, ok := parsed.Claims.(*tokens.UserClaims)
	s.Require().True(ok)
	s.Equal(user.ID, claims.ID)
}

func (s *UserServiceTestSuite) TestRegister_InvalidReferral() {
	s.mockUserRepo.EXPECT().FindUserByReferralCode(gomock.Any(), "NOSUCH").
		Return(nil, domain.ErrRecordNotFound)

	_, _, err := s.service.Register(s.T().Context(), RegisterUserArgs{
		Username:     "newuser",
		Password:     "secret",
		ReferralCode: "NOSUCH",
	})
	s.Require().ErrorIs(err, domain.ErrInvalidReferral)
}

func (s *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	referrer := domain.User{ID: 1, ReferralCode: "REFCODE1"}

	s.mockUserRepo.EXPECT().FindUserByReferralCode(gomock.Any(), referrer.ReferralCode).
		Return(&referrer, nil)
	s.mockHasher.EXPECT().HashPassword("secret").Return("hashed", nil)

	s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	// юзернейм занят, значит конфликт не по реферальному коду и ретраев не будет.
	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "taken").
		Return(&domain.User{ID: 3, Username: "taken"}, nil)

	_, _, err := s.service.Register(s.T().Context(), RegisterUserArgs{
		Username:     "taken",
		Password:     "secret",
		ReferralCode: referrer.ReferralCode,
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *UserServiceTestSuite) TestRegister_ReferralCodeCollisionRetries() {
	referrer := domain.User{ID: 1, ReferralCode: "REFCODE1"}

	s.mockUserRepo.EXPECT().FindUserByReferralCode(gomock.Any(), referrer.ReferralCode).
		Return(&referrer, nil)
	s.mockHasher.EXPECT().HashPassword("secret").Return("hashed", nil)

	// первая попытка натыкается на коллизию сгенерированного кода, вторая проходит.
	s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "newuser").
		Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateUser) (*domain.User, error) {
			return &domain.User{ID: 2, Username: createArgs.Username}, nil
		})

	user, _, err := s.service.Register(s.T().Context(), RegisterUserArgs{
		Username:     "newuser",
		Password:     "secret",
		ReferralCode: referrer.ReferralCode,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), user.ID)
}

func (s *UserServiceTestSuite) TestLogin() {
	user := domain.User{ID: 1, Username: "user", EncryptedPassword: "hashed"}

	s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), user.Username).
		Return(&user, nil)
	s.mockHasher.EXPECT().ComparePassword("secret", user.EncryptedPassword).Return(true)

	loggedIn, token, err := s.service.Login(s.T().Context(), user.Username, "secret")
	s.Require().NoError(err)
	s.Equal(user.ID, loggedIn.ID)

	parsed, parseErr := tokens.ValidateUserJWT(token, testJWTSecret)
	s.Require().NoError(parseErr)
	claims, ok := parsed.Claims.(*tokens.UserClaims)
	s.Require().True(ok)
	s.Equal(user.ID, claims.ID)
}

func (s *UserServiceTestSuite) TestLogin_WrongCredentials() {
	user := domain.User{ID: 1, Username: "user", EncryptedPassword: "hashed"}

	s.Run("wrong password", func() {
		s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), user.Username).
			Return(&user, nil)
		s.mockHasher.EXPECT().ComparePassword("wrong", user.EncryptedPassword).Return(false)

		_, _, err := s.service.Login(s.T().Context(), user.Username, "wrong")
		s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
	})

	s.Run("unknown username", func() {
		s.mockUserRepo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").
			Return(nil, domain.ErrRecordNotFound)

		// ошибка та же, что и при неверном пароле.
		_, _, err := s.service.Login(s.T().Context(), "ghost", "secret")
		s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
	})
}
