package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/handler"
	"github.com/osse101/SlotMock_Go/internal/ledger"
	"github.com/osse101/SlotMock_Go/internal/notification"
	"github.com/osse101/SlotMock_Go/internal/outcome"
	"github.com/osse101/SlotMock_Go/internal/registry"
	"github.com/osse101/SlotMock_Go/internal/round"
)

// stack wires every handler against real in-memory stores with a pinned RNG,
// seeded with the canonical demo player.
type stack struct {
	ledger        *ledger.Store
	registry      *registry.Store
	notifications *notification.Log

	user    *handler.UserHandler
	payment *handler.PaymentHandler
	slot    *handler.SlotHandler
	notify  *handler.NotificationHandler
}

func alwaysCherry(int) int { return 0 }

func cyclingLoss() func(int) int {
	i := 0
	return func(int) int {
		i++
		return i % 3
	}
}

func newStack(rng func(int) int) *stack {
	ledgerStore := ledger.NewStore([]domain.Player{
		{UserID: 123, Balance: decimal.RequireFromString("150.00"), Currency: "USD"},
	})
	registryStore := registry.NewStore()
	notificationLog := notification.NewLog()

	rounds := round.NewService(ledgerStore, registryStore, notificationLog, outcome.NewGeneratorWithRNG(rng))

	return &stack{
		ledger:        ledgerStore,
		registry:      registryStore,
		notifications: notificationLog,
		user:          handler.NewUserHandler(ledgerStore),
		payment:       handler.NewPaymentHandler(rounds),
		slot:          handler.NewSlotHandler(rounds),
		notify:        handler.NewNotificationHandler(rounds),
	}
}

func doRequest(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body handler.ErrorResponse
	decodeBody(t, rec, &body)
	return body.Error
}

// placeBet places a 25.00 bet for user 123 and returns the transaction ID.
func placeBet(t *testing.T, s *stack) string {
	t.Helper()
	rec := doRequest(s.payment.HandlePlaceBet, http.MethodPost, "/payment/placeBet",
		`{"userId": 123, "betAmount": 25.00}`)
	require.Equal(t, http.StatusOK, rec.Code, "place bet failed: %s", rec.Body.String())

	var resp handler.PlaceBetResponse
	decodeBody(t, rec, &resp)
	return resp.TransactionID
}
