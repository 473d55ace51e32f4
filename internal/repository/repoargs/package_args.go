package repoargs

import (
	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateUserPackage struct {
	UserID      int64
	PackageID   int64
	Amount      decimal.Decimal
	BonusAmount decimal.Decimal
	Status      domain.TransactionStatus
}
