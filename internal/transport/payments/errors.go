package payments

import "errors"

var (
	ErrNoDeposits = errors.New("no pending deposits")
)
