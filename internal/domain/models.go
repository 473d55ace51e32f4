package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
	WalletAddress     string
	// ReferralCode уникальный код юзера, по которому к нему привязываются рефералы.
	ReferralCode string
	// ReferredBy id пригласившего юзера. У корневых юзеров значение отсутствует.
	ReferredBy    *int64
	Balance       decimal.Decimal
	TotalEarnings decimal.Decimal
}

type Package struct {
	ID           int64
	CreatedAt    time.Time
	Name         string
	Amount       decimal.Decimal
	BonusPercent decimal.Decimal
	IsActive     bool
	SortOrder    int32
}

type UserPackage struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	PackageID   int64
	Amount      decimal.Decimal
	BonusAmount decimal.Decimal
	Status      TransactionStatus
}

type Transaction struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Type      TransactionType
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	Status    TransactionStatus
	// TrackID внешний идентификатор платежной системы. На колонку наложен частичный
	// уникальный индекс, он же защищает депозиты от двойного зачисления.
	TrackID       string
	WalletAddress string
	Notes         string
}

type ReferralEarning struct {
	ID             int64
	CreatedAt      time.Time
	UserID         int64
	ReferredUserID int64
	Level          int32
	Percent        decimal.Decimal
	Amount         decimal.Decimal
	SourceType     ReferralSourceType
}

// DailyClicks счетчик игровых кликов юзера за календарный день (UTC).
type DailyClicks struct {
	UserID    int64
	ClickDate time.Time
	Clicks    int32
}
