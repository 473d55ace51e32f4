package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/borislavgotsev27/pepeplay/internal/domain"
)

type PackagesHandler struct {
	packageSvs PackageServicer
}

func NewPackagesHandler(packageSvs PackageServicer) *PackagesHandler {
	return &PackagesHandler{
		packageSvs: packageSvs,
	}
}

type PackageResponseItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	BonusPercent float64 `json:"bonus_percent"`
}

// Index GET RouteGroup + PackagesRoute. Витрина доступных пакетов.
func (h *PackagesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	packages, err := h.packageSvs.List(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PackageResponseItem, len(packages))
	for i, pkg := range packages {
		response[i] = PackageResponseItem{
			ID:           pkg.ID,
			Name:         pkg.Name,
			Amount:       pkg.Amount.InexactFloat64(),
			BonusPercent: pkg.BonusPercent.InexactFloat64(),
		}
	}

	c.JSON(http.StatusOK, response)
}

type PurchaseParams struct {
	PackageID int64 `binding:"required" json:"package_id"`
}

type UserPackageResponseItem struct {
	PackageID   int64   `json:"package_id"`
	Amount      float64 `json:"amount"`
	BonusAmount float64 `json:"bonus_amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// Purchase POST RouteGroup + PackagePurchaseRoute. Покупка пакета с внутреннего баланса.
func (h *PackagesHandler) Purchase(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params PurchaseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	userPackage, err := h.packageSvs.Purchase(reqCtx, currentUserID, params.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPackageUnavailable):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("package unavailable")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, userPackageResponse(userPackage))
}

// UserIndex GET RouteGroup + UserPackagesRoute. Покупки текущего юзера.
func (h *PackagesHandler) UserIndex(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	userPackages, err := h.packageSvs.UserPackages(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(userPackages) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]UserPackageResponseItem, len(userPackages))
	for i, userPackage := range userPackages {
		response[i] = *userPackageResponse(&userPackage)
	}

	c.JSON(http.StatusOK, response)
}

func userPackageResponse(userPackage *domain.UserPackage) *UserPackageResponseItem {
	return &UserPackageResponseItem{
		PackageID:   userPackage.PackageID,
		Amount:      userPackage.Amount.InexactFloat64(),
		BonusAmount: userPackage.BonusAmount.InexactFloat64(),
		Status:      string(userPackage.Status),
		CreatedAt:   userPackage.CreatedAt.Format(time.RFC3339),
	}
}
