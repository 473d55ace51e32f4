package domain

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionTypeDeposit         TransactionType = "deposit"
	TransactionTypeWithdrawal      TransactionType = "withdrawal"
	TransactionTypeGameEarning     TransactionType = "game_earning"
	TransactionTypeReferralBonus   TransactionType = "referral_bonus"
	TransactionTypePackagePurchase TransactionType = "package_purchase"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type ReferralSourceType string

const (
	ReferralSourceGameEarnings ReferralSourceType = "game_earnings"
)

// Currency валюта всех платежей.
const Currency = "USDT"

// DepositWallet адрес, выданный платежной системой под конкретный депозит, и ее
// внешний идентификатор платежа.
type DepositWallet struct {
	Address string
	TrackID string
}

// DepositCheck состояние депозита по данным платежной системы.
type DepositCheck struct {
	Paid   bool
	Amount decimal.Decimal
}

const (
	// MaxDailyClicks лимит игровых кликов на юзера в сутки.
	MaxDailyClicks int32 = 3
	// DaysToROI срок окупаемости пакета в днях: дневной доход = сумма пакета / DaysToROI.
	DaysToROI int64 = 50
	// MaxReferralDepth глубина реферальной цепочки, по которой раздаются бонусы.
	MaxReferralDepth = 3
)
