// Package ledger holds player balances. All read-modify-write operations on a
// given user are serialized through a named lock, so two concurrent bets can
// never both pass the balance check and over-debit.
package ledger

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/concurrency"
	"github.com/osse101/SlotMock_Go/internal/domain"
)

// Store is the in-memory balance table.
type Store struct {
	mu      sync.RWMutex
	players map[int]*domain.Player
	locks   *concurrency.LockManager
}

// NewStore creates a Store seeded with the given players.
func NewStore(seed []domain.Player) *Store {
	s := &Store{
		players: make(map[int]*domain.Player, len(seed)),
		locks:   concurrency.NewLockManager(),
	}
	for i := range seed {
		p := seed[i]
		s.players[p.UserID] = &p
	}
	return s
}

// GetBalance returns the current balance and currency for a user.
func (s *Store) GetBalance(ctx context.Context, userID int) (decimal.Decimal, string, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.player(userID)
	if err != nil {
		return decimal.Zero, "", err
	}
	return p.Balance, p.Currency, nil
}

// Exists reports whether a user is known to the ledger.
func (s *Store) Exists(ctx context.Context, userID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.players[userID]
	return ok
}

// SetBalance unconditionally overwrites a user's balance. Negative balances
// are rejected.
func (s *Store) SetBalance(ctx context.Context, userID int, newBalance decimal.Decimal) (domain.Player, error) {
	if newBalance.IsNegative() {
		return domain.Player{}, fmt.Errorf("%w: balance must not be negative", domain.ErrInvalidAmount)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.player(userID)
	if err != nil {
		return domain.Player{}, err
	}
	p.Balance = newBalance
	return *p, nil
}

// Debit atomically decrements a user's balance and returns the new balance.
func (s *Store) Debit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: debit amount must be positive", domain.ErrInvalidAmount)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.player(userID)
	if err != nil {
		return decimal.Zero, err
	}
	if p.Balance.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("%w: balance %s is less than %s", domain.ErrInsufficientFunds, p.Balance, amount)
	}
	p.Balance = p.Balance.Sub(amount)
	return p.Balance, nil
}

// Credit atomically increments a user's balance and returns the new balance.
// Zero credits are rejected; payouts must be strictly positive.
func (s *Store) Credit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: credit amount must be positive", domain.ErrInvalidAmount)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.player(userID)
	if err != nil {
		return decimal.Zero, err
	}
	p.Balance = p.Balance.Add(amount)
	return p.Balance, nil
}

// player fetches the record pointer; callers must hold the user lock before
// touching Balance.
func (s *Store) player(userID int) (*domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[userID]
	if !ok {
		return nil, fmt.Errorf("%w: userId %d", domain.ErrUserNotFound, userID)
	}
	return p, nil
}

func (s *Store) userLock(userID int) *sync.Mutex {
	return s.locks.GetLock(strconv.Itoa(userID))
}
