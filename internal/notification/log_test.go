package notification

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMock_Go/internal/domain"
)

func TestAppendAndGet(t *testing.T) {
	log := NewLog()

	notificationID, err := log.Append(context.Background(), 123, "txn_abc123", "Congratulations! You won $250!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(notificationID, NotificationTokenPrefix))

	entry, ok := log.Get(notificationID)
	require.True(t, ok)
	assert.Equal(t, 123, entry.UserID)
	assert.Equal(t, "txn_abc123", entry.TransactionID)
	assert.Equal(t, "Congratulations! You won $250!", entry.Message)
	assert.Equal(t, domain.NotificationStatusSent, entry.Status)
}

func TestGetUnknownNotification(t *testing.T) {
	log := NewLog()
	_, ok := log.Get("notif_deadbeef")
	assert.False(t, ok)
}

func TestAppendIsAppendOnly(t *testing.T) {
	log := NewLog()
	ctx := context.Background()

	first, err := log.Append(ctx, 1, "txn_a", "first")
	require.NoError(t, err)
	second, err := log.Append(ctx, 1, "txn_a", "second")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, log.Count())

	entry, ok := log.Get(first)
	require.True(t, ok)
	assert.Equal(t, "first", entry.Message)
}
