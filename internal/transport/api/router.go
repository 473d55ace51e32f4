package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/borislavgotsev27/pepeplay/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup           = "/api"
	RegisterRoute        = "/user/register"
	LoginRoute           = "/user/login"
	BalanceRoute         = "/user/balance"
	TransactionsRoute    = "/user/transactions"
	ReferralsRoute       = "/user/referrals"
	UserPackagesRoute    = "/user/packages"
	GameEarningsRoute    = "/game/earnings"
	DepositRoute         = "/wallet/deposit"
	DepositStatusRoute   = "/wallet/deposit/status"
	WithdrawRoute        = "/wallet/withdraw"
	PackagesRoute        = "/packages"
	PackagePurchaseRoute = "/packages/purchase"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	GameService     GameServicer
	WalletService   WalletServicer
	PackageService  PackageServicer
	ReferralService ReferralServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	userHandler := NewUserHandler(args.UserService, args.WalletService)
	gameHandler := NewGameHandler(args.GameService, args.PackageService)
	walletHandler := NewWalletHandler(args.WalletService)
	packagesHandler := NewPackagesHandler(args.PackageService)
	referralsHandler := NewReferralsHandler(args.ReferralService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(BalanceRoute, userHandler.Balance)
	api.GET(TransactionsRoute, userHandler.Transactions)
	api.GET(ReferralsRoute, referralsHandler.Index)

	api.POST(GameEarningsRoute, gameHandler.CreateEarning)
	api.GET(GameEarningsRoute, gameHandler.Status)

	api.POST(DepositRoute, walletHandler.CreateDeposit)
	api.GET(DepositStatusRoute, walletHandler.DepositStatus)
	api.POST(WithdrawRoute, walletHandler.Withdraw)

	api.GET(PackagesRoute, packagesHandler.Index)
	api.POST(PackagePurchaseRoute, packagesHandler.Purchase)
	api.GET(UserPackagesRoute, packagesHandler.UserIndex)
	return r
}
