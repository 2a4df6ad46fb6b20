package registry

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMock_Go/internal/domain"
)

func placeBet(t *testing.T, store *Store) string {
	t.Helper()
	transactionID, err := store.CreateBet(context.Background(), 123, decimal.NewFromInt(25))
	require.NoError(t, err)
	return transactionID
}

func spinResultFor(transactionID string) domain.SpinResult {
	return domain.SpinResult{
		TransactionID: transactionID,
		UserID:        123,
		Outcome:       domain.OutcomeWin,
		WinAmount:     decimal.NewFromInt(250),
		Reels:         [domain.ReelCount]string{"Cherry", "Cherry", "Cherry"},
		Message:       "Congratulations! You won $250!",
	}
}

func TestCreateBetAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	transactionID := placeBet(t, store)
	assert.True(t, strings.HasPrefix(transactionID, TransactionTokenPrefix))

	tx, err := store.Get(ctx, transactionID)
	require.NoError(t, err)
	assert.Equal(t, transactionID, tx.TransactionID)
	assert.Equal(t, 123, tx.UserID)
	assert.True(t, tx.BetAmount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, domain.TransactionStatusSuccess, tx.Status)
	assert.Equal(t, domain.RoundStatePlaced, tx.State)
	assert.Nil(t, tx.WinAmount)
	assert.Empty(t, tx.PayoutStatus)
}

func TestCreateBetGeneratesUniqueTokens(t *testing.T) {
	store := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		transactionID := placeBet(t, store)
		assert.False(t, seen[transactionID], "duplicate token %s", transactionID)
		seen[transactionID] = true
	}
	assert.Equal(t, 1000, store.Count())
}

func TestGetUnknownTransaction(t *testing.T) {
	store := NewStore()
	_, err := store.Get(context.Background(), "txn_999999")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestRecordSpin(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	transactionID := placeBet(t, store)

	require.NoError(t, store.RecordSpin(ctx, spinResultFor(transactionID)))

	tx, err := store.Get(ctx, transactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoundStateSpun, tx.State)

	spin, ok := store.GetSpin(ctx, transactionID)
	require.True(t, ok)
	assert.Equal(t, domain.OutcomeWin, spin.Outcome)

	// Second spin against the same round is rejected
	err = store.RecordSpin(ctx, spinResultFor(transactionID))
	assert.ErrorIs(t, err, domain.ErrAlreadySpun)
}

func TestRecordSpinUnknownTransaction(t *testing.T) {
	store := NewStore()
	err := store.RecordSpin(context.Background(), spinResultFor("txn_999999"))
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestRecordSpinAfterPayout(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	transactionID := placeBet(t, store)

	require.NoError(t, store.RecordPayout(ctx, transactionID, decimal.NewFromInt(75)))

	err := store.RecordSpin(ctx, spinResultFor(transactionID))
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}

func TestRecordPayout(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	transactionID := placeBet(t, store)

	require.NoError(t, store.RecordPayout(ctx, transactionID, decimal.NewFromInt(250)))

	tx, err := store.Get(ctx, transactionID)
	require.NoError(t, err)
	require.NotNil(t, tx.WinAmount)
	assert.True(t, tx.WinAmount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.PayoutStatusPaid, tx.PayoutStatus)
	assert.Equal(t, domain.RoundStateSettled, tx.State)

	// WinAmount and PayoutStatus are write-once
	err = store.RecordPayout(ctx, transactionID, decimal.NewFromInt(500))
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)

	tx, err = store.Get(ctx, transactionID)
	require.NoError(t, err)
	assert.True(t, tx.WinAmount.Equal(decimal.NewFromInt(250)))
}

func TestRecordPayoutUnknownTransaction(t *testing.T) {
	store := NewStore()
	err := store.RecordPayout(context.Background(), "txn_999999", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestConcurrentPayoutsSettleExactlyOnce(t *testing.T) {
	store := NewStore()
	transactionID := placeBet(t, store)

	var successes atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.RecordPayout(context.Background(), transactionID, decimal.NewFromInt(75)); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}
