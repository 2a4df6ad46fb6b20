package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundState represents the lifecycle position of a betting round
type RoundState string

const (
	RoundStatePlaced  RoundState = "PLACED"
	RoundStateSpun    RoundState = "SPUN"
	RoundStateSettled RoundState = "SETTLED"
)

// Transaction status values
const (
	TransactionStatusSuccess = "SUCCESS"
	PayoutStatusPaid         = "PAID"
)

// Transaction is the record created by bet placement. WinAmount and
// PayoutStatus are write-once: they are set by the payout step and a second
// payout against the same transaction is rejected.
type Transaction struct {
	TransactionID string           `json:"transactionId"`
	UserID        int              `json:"userId"`
	BetAmount     decimal.Decimal  `json:"betAmount"`
	Status        string           `json:"status"`
	WinAmount     *decimal.Decimal `json:"winAmount,omitempty"`
	PayoutStatus  string           `json:"payoutStatus,omitempty"`
	State         RoundState       `json:"state"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SpinOutcome classifies a spin result
type SpinOutcome string

const (
	OutcomeWin  SpinOutcome = "WIN"
	OutcomeLose SpinOutcome = "LOSE"
)

// ReelCount is the number of symbols drawn per spin
const ReelCount = 3

// SpinResult is the immutable outcome of one spin. At most one spin is
// recorded per transaction.
type SpinResult struct {
	TransactionID string            `json:"transactionId"`
	UserID        int               `json:"userId"`
	Outcome       SpinOutcome       `json:"outcome"`
	WinAmount     decimal.Decimal   `json:"winAmount"`
	Reels         [ReelCount]string `json:"reels"`
	Message       string            `json:"message"`
}
