package payments

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/client"
)

type Client interface {
	RequestPayment(ctx context.Context, amount decimal.Decimal) (*client.PaymentResponse, error)
	InquirePayment(ctx context.Context, trackID string) (*client.InquiryResponse, error)
	CreatePayout(ctx context.Context, address string, amount decimal.Decimal) (*client.PayoutResponse, error)
}

type Servicer interface {
	PendingDeposits(ctx context.Context, limit uint) ([]domain.Transaction, error)
	ConfirmDeposit(ctx context.Context, trackID string, amount decimal.Decimal) (*domain.Transaction, error)
	FailDeposit(ctx context.Context, trackID string) error
}
