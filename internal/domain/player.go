package domain

import "github.com/shopspring/decimal"

// Player represents an account on the mock platform. Players are seeded at
// startup and never deleted; only Balance is mutated.
type Player struct {
	UserID   int             `json:"userId"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}
