package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
)

type GameHandler struct {
	gameSvs    GameServicer
	packageSvs PackageServicer
}

func NewGameHandler(gameSvs GameServicer, packageSvs PackageServicer) *GameHandler {
	return &GameHandler{
		gameSvs:    gameSvs,
		packageSvs: packageSvs,
	}
}

type CreateEarningParams struct {
	Score    int64           `json:"score"`
	Earnings decimal.Decimal `binding:"required" json:"earnings"`
}

type EarningResponse struct {
	Success       bool    `json:"success"`
	Earnings      float64 `json:"earnings"`
	NewBalance    float64 `json:"new_balance"`
	TotalEarnings float64 `json:"total_earnings"`
}

// CreateEarning POST RouteGroup + GameEarningsRoute. Фиксирует заработок за один
// игровой клик и возвращает баланс после зачисления. При исчерпанном дневном лимите
// вернет http.StatusTooManyRequests.
func (h *GameHandler) CreateEarning(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateEarningParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.gameSvs.RecordEarning(reqCtx, currentUserID, params.Score, params.Earnings)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDailyLimitReached):
			_ = c.AbortWithError(http.StatusTooManyRequests, errors.New("daily click limit reached")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrInvalidAmount):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &EarningResponse{
		Success:       true,
		Earnings:      result.Transaction.Amount.InexactFloat64(),
		NewBalance:    result.Balance.InexactFloat64(),
		TotalEarnings: result.TotalEarnings.InexactFloat64(),
	})
}

type GameStatusResponse struct {
	ClicksToday  int32   `json:"clicks_today"`
	ClicksLimit  int32   `json:"clicks_limit"`
	PerClickRate float64 `json:"per_click_rate"`
}

// Status GET RouteGroup + GameEarningsRoute. Текущий счетчик кликов и ставка за клик.
func (h *GameHandler) Status(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	clicks, clicksErr := h.gameSvs.ClicksToday(reqCtx, currentUserID)
	if clicksErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, clicksErr).SetType(gin.ErrorTypePrivate)
		return
	}

	rate, rateErr := h.packageSvs.PerClickRate(reqCtx, currentUserID)
	if rateErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, rateErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &GameStatusResponse{
		ClicksToday:  clicks.Clicks,
		ClicksLimit:  domain.MaxDailyClicks,
		PerClickRate: rate.InexactFloat64(),
	})
}
