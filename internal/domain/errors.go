package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance   = errors.New("not enough balance")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrDailyLimitReached  = errors.New("daily click limit reached")
	ErrInvalidReferral    = errors.New("invalid referral code")
	ErrPackageUnavailable = errors.New("package unavailable")
)

// InsufficientBalanceError содержит данные для пользовательского сообщения о нехватке
// средств: сколько требуется (с учетом комиссии) и сколько доступно.
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func NewInsufficientBalanceError(required, available decimal.Decimal) error {
	return &InsufficientBalanceError{Required: required, Available: available}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf(
		"insufficient balance. Required: $%s (including fee), Available: $%s",
		e.Required.StringFixed(2),
		e.Available.StringFixed(2),
	)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrNotEnoughBalance
}

// BelowMinimumError возвращается при попытке вывода суммы меньше минимальной.
type BelowMinimumError struct {
	Minimum decimal.Decimal
}

func NewBelowMinimumError(minimum decimal.Decimal) error {
	return &BelowMinimumError{Minimum: minimum}
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum withdrawal is $%s", e.Minimum.StringFixed(2))
}
