package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
)

type UserHandler struct {
	userSvs   UserServicer
	walletSvs WalletServicer
}

func NewUserHandler(userSvs UserServicer, walletSvs WalletServicer) *UserHandler {
	return &UserHandler{
		userSvs:   userSvs,
		walletSvs: walletSvs,
	}
}

type BalanceResponse struct {
	Current       float64 `json:"current"`
	TotalEarnings float64 `json:"total_earnings"`
}

// Balance GET RouteGroup + BalanceRoute.
func (h *UserHandler) Balance(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userSvs.GetByID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Current:       user.Balance.InexactFloat64(),
		TotalEarnings: user.TotalEarnings.InexactFloat64(),
	})
}

type TransactionResponseItem struct {
	Type      domain.TransactionType   `json:"type"`
	Amount    float64                  `json:"amount"`
	Fee       float64                  `json:"fee,omitempty"`
	Status    domain.TransactionStatus `json:"status"`
	Notes     string                   `json:"notes,omitempty"`
	CreatedAt string                   `json:"created_at"`
}

// Transactions GET RouteGroup + TransactionsRoute. История операций от новых к старым.
func (h *UserHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.walletSvs.Transactions(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(transactions) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]TransactionResponseItem, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponseItem{
			Type:      transaction.Type,
			Amount:    transaction.Amount.InexactFloat64(),
			Fee:       transaction.Fee.InexactFloat64(),
			Status:    transaction.Status,
			Notes:     transaction.Notes,
			CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}
