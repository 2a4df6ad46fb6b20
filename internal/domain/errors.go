package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"

	// Registry errors
	ErrMsgTransactionNotFound = "transaction not found"
	ErrMsgAlreadyPaid         = "transaction already paid out"
	ErrMsgAlreadySpun         = "transaction already spun"

	// Round errors
	ErrMsgBetMismatch  = "bet amount does not match transaction"
	ErrMsgWinMismatch  = "win amount does not match spin result"
	ErrMsgEmptyMessage = "message must not be empty"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Ledger errors
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Registry errors
	ErrTransactionNotFound = errors.New(ErrMsgTransactionNotFound)
	ErrAlreadyPaid         = errors.New(ErrMsgAlreadyPaid)
	ErrAlreadySpun         = errors.New(ErrMsgAlreadySpun)

	// Round errors
	ErrBetMismatch  = errors.New(ErrMsgBetMismatch)
	ErrWinMismatch  = errors.New(ErrMsgWinMismatch)
	ErrEmptyMessage = errors.New(ErrMsgEmptyMessage)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
