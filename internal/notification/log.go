// Package notification is the append-only record of dispatched notifications.
package notification

import (
	"context"
	"sync"

	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/utils"
)

// NotificationTokenPrefix marks generated notification identifiers.
const NotificationTokenPrefix = "notif_"

// Log stores delivered notifications keyed by generated identifier.
type Log struct {
	mu      sync.RWMutex
	entries []domain.Notification
	byID    map[string]int
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{byID: make(map[string]int)}
}

// Append records a notification and returns its generated identifier.
func (l *Log) Append(ctx context.Context, userID int, transactionID, message string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var notificationID string
	for {
		token, err := utils.NewToken(NotificationTokenPrefix)
		if err != nil {
			return "", err
		}
		if _, taken := l.byID[token]; !taken {
			notificationID = token
			break
		}
	}

	l.byID[notificationID] = len(l.entries)
	l.entries = append(l.entries, domain.Notification{
		NotificationID: notificationID,
		UserID:         userID,
		TransactionID:  transactionID,
		Message:        message,
		Status:         domain.NotificationStatusSent,
	})
	return notificationID, nil
}

// Get returns a notification by identifier.
func (l *Log) Get(notificationID string) (domain.Notification, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, ok := l.byID[notificationID]
	if !ok {
		return domain.Notification{}, false
	}
	return l.entries[idx], true
}

// Count returns the number of logged notifications.
func (l *Log) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
