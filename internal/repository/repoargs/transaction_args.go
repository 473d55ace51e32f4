package repoargs

import (
	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	UserID        int64
	Type          domain.TransactionType
	Amount        decimal.Decimal
	Fee           decimal.Decimal
	Status        domain.TransactionStatus
	TrackID       string
	WalletAddress string
	Notes         string
}
