// Package round orchestrates the legal sequence of a betting round:
// PLACED (after bet) -> SPUN (after spin, optional) -> SETTLED (after payout).
// Each step only depends on identifiers issued by an earlier step; cross-step
// safety comes from the per-entity atomicity of the ledger and registry.
package round

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/logger"
	"github.com/osse101/SlotMock_Go/internal/outcome"
)

// Ledger defines the balance operations the round machine needs
type Ledger interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, string, error)
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	Exists(ctx context.Context, userID int) bool
}

// Registry defines the transaction record operations the round machine needs
type Registry interface {
	CreateBet(ctx context.Context, userID int, betAmount decimal.Decimal) (string, error)
	Get(ctx context.Context, transactionID string) (domain.Transaction, error)
	RecordSpin(ctx context.Context, result domain.SpinResult) error
	GetSpin(ctx context.Context, transactionID string) (domain.SpinResult, bool)
	RecordPayout(ctx context.Context, transactionID string, winAmount decimal.Decimal) error
}

// NotificationLog defines the notification sink the round machine needs
type NotificationLog interface {
	Append(ctx context.Context, userID int, transactionID, message string) (string, error)
}

// BetReceipt is the result of a successful bet placement
type BetReceipt struct {
	TransactionID string
	NewBalance    decimal.Decimal
}

// PayoutReceipt is the result of a successful settlement
type PayoutReceipt struct {
	TransactionID string
	NewBalance    decimal.Decimal
}

// Service defines the externally visible round operations
type Service interface {
	PlaceBet(ctx context.Context, userID int, betAmount decimal.Decimal) (*BetReceipt, error)
	Spin(ctx context.Context, userID int, betAmount decimal.Decimal, transactionID string) (*domain.SpinResult, error)
	Payout(ctx context.Context, userID int, transactionID string, winAmount decimal.Decimal) (*PayoutReceipt, error)
	Notify(ctx context.Context, userID int, transactionID, message string) (string, error)
}

type service struct {
	ledger        Ledger
	registry      Registry
	notifications NotificationLog
	generator     *outcome.Generator
}

// NewService creates a new round service
func NewService(ledger Ledger, registry Registry, notifications NotificationLog, generator *outcome.Generator) Service {
	return &service{
		ledger:        ledger,
		registry:      registry,
		notifications: notifications,
		generator:     generator,
	}
}

// PlaceBet debits the ledger and creates the transaction record. The debit
// runs first; CreateBet cannot fail for an already-debited user, so no
// compensation path is needed.
func (s *service) PlaceBet(ctx context.Context, userID int, betAmount decimal.Decimal) (*BetReceipt, error) {
	log := logger.FromContext(ctx)

	if !betAmount.IsPositive() {
		return nil, fmt.Errorf("%w: bet amount must be positive", domain.ErrInvalidAmount)
	}

	newBalance, err := s.ledger.Debit(ctx, userID, betAmount)
	if err != nil {
		return nil, err
	}

	transactionID, err := s.registry.CreateBet(ctx, userID, betAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to create bet record: %w", err)
	}

	log.Info("Bet placed",
		"user_id", userID,
		"transaction_id", transactionID,
		"bet_amount", betAmount,
		"new_balance", newBalance)

	return &BetReceipt{TransactionID: transactionID, NewBalance: newBalance}, nil
}

// Spin draws the reels for a placed bet and records the result. The supplied
// betAmount must match the amount recorded at bet time; winnings are always
// computed from the recorded amount.
func (s *service) Spin(ctx context.Context, userID int, betAmount decimal.Decimal, transactionID string) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)

	if !s.ledger.Exists(ctx, userID) {
		return nil, fmt.Errorf("%w: userId %d", domain.ErrUserNotFound, userID)
	}

	tx, err := s.registry.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !betAmount.Equal(tx.BetAmount) {
		return nil, fmt.Errorf("%w: got %s, transaction holds %s", domain.ErrBetMismatch, betAmount, tx.BetAmount)
	}

	reels := s.generator.Draw()
	spinOutcome, winAmount, message := outcome.Evaluate(reels, tx.BetAmount)

	result := domain.SpinResult{
		TransactionID: transactionID,
		UserID:        userID,
		Outcome:       spinOutcome,
		WinAmount:     winAmount,
		Reels:         reels,
		Message:       message,
	}

	if err := s.registry.RecordSpin(ctx, result); err != nil {
		return nil, err
	}

	log.Info("Spin completed",
		"user_id", userID,
		"transaction_id", transactionID,
		"outcome", spinOutcome,
		"win_amount", winAmount)

	return &result, nil
}

// Payout settles a round: marks the transaction PAID and credits the ledger.
// RecordPayout is compare-and-set and runs before the credit, so a duplicate
// payout can never double-credit the balance.
func (s *service) Payout(ctx context.Context, userID int, transactionID string, winAmount decimal.Decimal) (*PayoutReceipt, error) {
	log := logger.FromContext(ctx)

	if !s.ledger.Exists(ctx, userID) {
		return nil, fmt.Errorf("%w: userId %d", domain.ErrUserNotFound, userID)
	}

	if _, err := s.registry.Get(ctx, transactionID); err != nil {
		return nil, err
	}
	if !winAmount.IsPositive() {
		return nil, fmt.Errorf("%w: win amount must be positive", domain.ErrInvalidAmount)
	}

	// A recorded spin fixes the win amount; anything else is rejected. A LOSE
	// spin pays zero, so it can never be settled through this path.
	if spin, ok := s.registry.GetSpin(ctx, transactionID); ok {
		if !winAmount.Equal(spin.WinAmount) {
			return nil, fmt.Errorf("%w: got %s, spin pays %s", domain.ErrWinMismatch, winAmount, spin.WinAmount)
		}
	}

	if err := s.registry.RecordPayout(ctx, transactionID, winAmount); err != nil {
		return nil, err
	}

	newBalance, err := s.ledger.Credit(ctx, userID, winAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to credit payout: %w", err)
	}

	log.Info("Payout settled",
		"user_id", userID,
		"transaction_id", transactionID,
		"win_amount", winAmount,
		"new_balance", newBalance)

	return &PayoutReceipt{TransactionID: transactionID, NewBalance: newBalance}, nil
}

// Notify appends a notification referencing an existing round.
func (s *service) Notify(ctx context.Context, userID int, transactionID, message string) (string, error) {
	log := logger.FromContext(ctx)

	if !s.ledger.Exists(ctx, userID) {
		return "", fmt.Errorf("%w: userId %d", domain.ErrUserNotFound, userID)
	}
	if _, err := s.registry.Get(ctx, transactionID); err != nil {
		return "", err
	}
	if message == "" {
		return "", domain.ErrEmptyMessage
	}

	notificationID, err := s.notifications.Append(ctx, userID, transactionID, message)
	if err != nil {
		return "", fmt.Errorf("failed to append notification: %w", err)
	}

	log.Info("Notification dispatched",
		"user_id", userID,
		"transaction_id", transactionID,
		"notification_id", notificationID)

	return notificationID, nil
}
