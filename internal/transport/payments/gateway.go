package payments

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
	"github.com/borislavgotsev27/pepeplay/internal/transport/payments/client"
)

// Gateway адаптирует клиент платежной системы к интерфейсу сервисного слоя.
type Gateway struct {
	client Client
}

func NewGateway(c Client) *Gateway {
	return &Gateway{client: c}
}

func (g *Gateway) CreateDepositWallet(ctx context.Context, amount decimal.Decimal) (*domain.DepositWallet, error) {
	resp, err := g.client.RequestPayment(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("creating deposit wallet: %w", err)
	}
	return &domain.DepositWallet{
		Address: resp.Address,
		TrackID: resp.TrackID,
	}, nil
}

func (g *Gateway) CheckDeposit(ctx context.Context, trackID string) (*domain.DepositCheck, error) {
	resp, err := g.client.InquirePayment(ctx, trackID)
	if err != nil {
		return nil, fmt.Errorf("checking deposit: %w", err)
	}
	return &domain.DepositCheck{
		Paid:   resp.Status == client.StatusPaid,
		Amount: resp.Amount,
	}, nil
}

func (g *Gateway) CreatePayout(ctx context.Context, address string, amount decimal.Decimal) (string, error) {
	resp, err := g.client.CreatePayout(ctx, address, amount)
	if err != nil {
		return "", fmt.Errorf("creating payout: %w", err)
	}
	return resp.TrackID, nil
}
