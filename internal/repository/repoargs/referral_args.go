package repoargs

import (
	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateReferralEarning struct {
	UserID         int64
	ReferredUserID int64
	Level          int32
	Percent        decimal.Decimal
	Amount         decimal.Decimal
	SourceType     domain.ReferralSourceType
}

// ReferralLevelSum агрегат заработка реферера по одному уровню цепочки.
type ReferralLevelSum struct {
	Level  int32
	Count  int64
	Amount decimal.Decimal
}
