package domain

import "errors"

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrNoStock             = errors.New("no numbers in stock")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrAuthFailed          = errors.New("provider authentication failed")
	ErrInvalidTransition   = errors.New("invalid reservation transition")
	ErrInvariantViolation  = errors.New("pool number claimed concurrently")
)
