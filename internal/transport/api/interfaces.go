package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type GameServicer interface {
	RecordEarning(ctx context.Context, userID, score int64, amount decimal.Decimal) (*service.EarningResult, error)
	ClicksToday(ctx context.Context, userID int64) (*domain.DailyClicks, error)
}

type WalletServicer interface {
	CreateDeposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error)
	DepositStatus(ctx context.Context, userID int64, trackID string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, walletAddress string) (*domain.Transaction, error)
	Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

type PackageServicer interface {
	List(ctx context.Context) ([]domain.Package, error)
	UserPackages(ctx context.Context, userID int64) ([]domain.UserPackage, error)
	Purchase(ctx context.Context, userID, packageID int64) (*domain.UserPackage, error)
	PerClickRate(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type ReferralServicer interface {
	Stats(ctx context.Context, userID int64) (*service.ReferralStats, error)
	Earnings(ctx context.Context, userID int64) ([]domain.ReferralEarning, error)
}
