// Package registry holds bet/payout transaction records and the spin result
// recorded against each transaction. Records are append-only except for the
// payout-status mutation, which is compare-and-set under a per-transaction
// lock so at most one payout ever lands.
package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/concurrency"
	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/utils"
)

// TokenPrefixes for generated identifiers. Callers treat the tokens as opaque.
const (
	TransactionTokenPrefix = "txn_"
)

// Store is the in-memory transaction table.
type Store struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	spins        map[string]*domain.SpinResult
	locks        *concurrency.LockManager
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		transactions: make(map[string]*domain.Transaction),
		spins:        make(map[string]*domain.SpinResult),
		locks:        concurrency.NewLockManager(),
	}
}

// CreateBet stores a SUCCESS transaction record for the bet and returns its
// generated identifier. Tokens are collision-checked against live records.
func (s *Store) CreateBet(ctx context.Context, userID int, betAmount decimal.Decimal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactionID string
	for {
		token, err := utils.NewToken(TransactionTokenPrefix)
		if err != nil {
			return "", err
		}
		if _, taken := s.transactions[token]; !taken {
			transactionID = token
			break
		}
	}

	s.transactions[transactionID] = &domain.Transaction{
		TransactionID: transactionID,
		UserID:        userID,
		BetAmount:     betAmount,
		Status:        domain.TransactionStatusSuccess,
		State:         domain.RoundStatePlaced,
		CreatedAt:     time.Now().UTC(),
	}
	return transactionID, nil
}

// Get returns a copy of the transaction record.
func (s *Store) Get(ctx context.Context, transactionID string) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[transactionID]
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, transactionID)
	}
	return *tx, nil
}

// RecordSpin attaches a spin result to its transaction and advances the round
// to SPUN. A second spin, or a spin against a settled round, is rejected.
func (s *Store) RecordSpin(ctx context.Context, result domain.SpinResult) error {
	lock := s.locks.GetLock(result.TransactionID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[result.TransactionID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, result.TransactionID)
	}
	if tx.PayoutStatus == domain.PayoutStatusPaid {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyPaid, result.TransactionID)
	}
	if tx.State != domain.RoundStatePlaced {
		return fmt.Errorf("%w: %s", domain.ErrAlreadySpun, result.TransactionID)
	}

	s.spins[result.TransactionID] = &result
	tx.State = domain.RoundStateSpun
	return nil
}

// GetSpin returns the spin result recorded against a transaction, if any.
func (s *Store) GetSpin(ctx context.Context, transactionID string) (domain.SpinResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spin, ok := s.spins[transactionID]
	if !ok {
		return domain.SpinResult{}, false
	}
	return *spin, true
}

// RecordPayout sets the win amount and payout status on a transaction.
// The payout status is compare-and-set: once PAID, every later call fails
// with ErrAlreadyPaid regardless of interleaving.
func (s *Store) RecordPayout(ctx context.Context, transactionID string, winAmount decimal.Decimal) error {
	lock := s.locks.GetLock(transactionID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[transactionID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, transactionID)
	}
	if tx.PayoutStatus == domain.PayoutStatusPaid {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyPaid, transactionID)
	}

	win := winAmount.Copy()
	tx.WinAmount = &win
	tx.PayoutStatus = domain.PayoutStatusPaid
	tx.State = domain.RoundStateSettled
	return nil
}

// Count returns the number of stored transactions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}
