package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindUserByReferralCode(ctx context.Context, code string) (*domain.User, error)
	AddEarnings(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error)
	CreditBalance(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error)
	DebitBalance(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)
	FindByTrackID(ctx context.Context, trackID string) (*domain.Transaction, error)
	GetPendingDeposits(ctx context.Context, limit uint) ([]domain.Transaction, error)
	CompletePendingDeposit(ctx context.Context, trackID string, amount decimal.Decimal) (*domain.Transaction, error)
	FailPendingDeposit(ctx context.Context, trackID string) error
	FailPendingDepositsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type ReferralEarningRepository interface {
	Create(ctx context.Context, args repoargs.CreateReferralEarning) (*domain.ReferralEarning, error)
	GetByReferrer(ctx context.Context, userID int64) ([]domain.ReferralEarning, error)
	SumByReferrer(ctx context.Context, userID int64) ([]repoargs.ReferralLevelSum, error)
}

type PackageRepository interface {
	GetActive(ctx context.Context) ([]domain.Package, error)
	FindByID(ctx context.Context, id int64) (*domain.Package, error)
	CreateUserPackage(ctx context.Context, args repoargs.CreateUserPackage) (*domain.UserPackage, error)
	GetUserPackages(ctx context.Context, userID int64) ([]domain.UserPackage, error)
	FindActiveUserPackage(ctx context.Context, userID int64) (*domain.UserPackage, error)
}

type DailyClicksRepository interface {
	Increment(ctx context.Context, userID int64, day time.Time, limit int32) (int32, error)
	Get(ctx context.Context, userID int64, day time.Time) (*domain.DailyClicks, error)
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PaymentGateway клиент криптоплатежной системы.
type PaymentGateway interface {
	CreateDepositWallet(ctx context.Context, amount decimal.Decimal) (*domain.DepositWallet, error)
	CheckDeposit(ctx context.Context, trackID string) (*domain.DepositCheck, error)
	CreatePayout(ctx context.Context, address string, amount decimal.Decimal) (trackID string, err error)
}

// ReferralDistributor раздает реферальные бонусы по цепочке пригласивших после
// успешного игрового начисления.
type ReferralDistributor interface {
	Distribute(ctx context.Context, sourceUserID int64, amount decimal.Decimal)
}
