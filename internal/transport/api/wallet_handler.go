package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
)

type WalletHandler struct {
	walletSvs WalletServicer
}

func NewWalletHandler(walletSvs WalletServicer) *WalletHandler {
	return &WalletHandler{
		walletSvs: walletSvs,
	}
}

type CreateDepositParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

type DepositResponse struct {
	TrackID       string  `json:"track_id"`
	WalletAddress string  `json:"wallet_address"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// CreateDeposit POST RouteGroup + DepositRoute. Выдает юзеру адрес под депозит.
// Зачисление на баланс произойдет после подтверждения платежа.
func (h *WalletHandler) CreateDeposit(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateDepositParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.walletSvs.CreateDeposit(reqCtx, currentUserID, params.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			c.AbortWithStatus(http.StatusUnprocessableEntity)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, depositResponse(transaction))
}

// DepositStatus GET RouteGroup + DepositStatusRoute. Статус депозита по track_id
// из query. Чужой депозит неотличим от несуществующего.
func (h *WalletHandler) DepositStatus(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	trackID := c.Query("track_id")
	if trackID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.walletSvs.DepositStatus(reqCtx, currentUserID, trackID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, depositResponse(transaction))
}

type WithdrawParams struct {
	Amount        decimal.Decimal `binding:"required"         json:"amount"`
	WalletAddress string          `binding:"required,max=128" json:"wallet_address"`
}

type WithdrawResponse struct {
	TrackID   string  `json:"track_id"`
	Amount    float64 `json:"amount"`
	Fee       float64 `json:"fee"`
	CreatedAt string  `json:"created_at"`
}

// Withdraw POST RouteGroup + WithdrawRoute. Выводит средства на указанный кошелек.
// При нехватке баланса вернет http.StatusPaymentRequired с деталями.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.walletSvs.Withdraw(reqCtx, currentUserID, params.Amount, params.WalletAddress)
	if err != nil {
		var belowMinErr *domain.BelowMinimumError
		switch {
		case errors.As(err, &belowMinErr):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, belowMinErr).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &WithdrawResponse{
		TrackID:   transaction.TrackID,
		Amount:    transaction.Amount.InexactFloat64(),
		Fee:       transaction.Fee.InexactFloat64(),
		CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
	})
}

func depositResponse(transaction *domain.Transaction) *DepositResponse {
	return &DepositResponse{
		TrackID:       transaction.TrackID,
		WalletAddress: transaction.WalletAddress,
		Amount:        transaction.Amount.InexactFloat64(),
		Currency:      domain.Currency,
		Status:        string(transaction.Status),
		CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
	}
}
