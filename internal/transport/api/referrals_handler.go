package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReferralsHandler struct {
	referralSvs ReferralServicer
}

func NewReferralsHandler(referralSvs ReferralServicer) *ReferralsHandler {
	return &ReferralsHandler{
		referralSvs: referralSvs,
	}
}

type ReferralLevelItem struct {
	Level  int32   `json:"level"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type ReferralStatsResponse struct {
	ReferralCode string              `json:"referral_code"`
	TotalAmount  float64             `json:"total_amount"`
	Levels       []ReferralLevelItem `json:"levels"`
}

// Index GET RouteGroup + ReferralsRoute. Сводка реферальной программы юзера.
func (h *ReferralsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.referralSvs.Stats(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	levels := make([]ReferralLevelItem, len(stats.Levels))
	for i, level := range stats.Levels {
		levels[i] = ReferralLevelItem{
			Level:  level.Level,
			Count:  level.Count,
			Amount: level.Amount.InexactFloat64(),
		}
	}

	c.JSON(http.StatusOK, &ReferralStatsResponse{
		ReferralCode: stats.ReferralCode,
		TotalAmount:  stats.TotalAmount.InexactFloat64(),
		Levels:       levels,
	})
}
