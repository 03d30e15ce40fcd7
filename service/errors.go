package service

import "errors"

// Business errors surfaced to the API layer. Handlers translate these to
// 400/404 with localized messages; anything else is a persistence failure
// and becomes a 500.
var (
	// ErrInvalidAmount means the amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidFund means the fund name is not one of the three buckets.
	ErrInvalidFund = errors.New("unknown fund")
	// ErrSameFund means source and destination funds are identical.
	ErrSameFund = errors.New("source and destination funds must differ")
	// ErrInsufficientFunds means the source bucket cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotFound means the record does not exist or belongs to another user.
	ErrNotFound = errors.New("record not found")
)
