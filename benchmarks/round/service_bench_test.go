package round_bench

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/ledger"
	"github.com/osse101/SlotMock_Go/internal/notification"
	"github.com/osse101/SlotMock_Go/internal/outcome"
	"github.com/osse101/SlotMock_Go/internal/registry"
	"github.com/osse101/SlotMock_Go/internal/round"
)

// newBenchService wires the service against the real in-memory stores. The
// pinned RNG always draws triple Cherry, so the balance only grows and the
// loop never hits an insufficient-funds path.
func newBenchService() round.Service {
	ledgerStore := ledger.NewStore([]domain.Player{
		{UserID: 1, Balance: decimal.NewFromInt(1_000_000_000), Currency: "USD"},
	})
	registryStore := registry.NewStore()
	notificationLog := notification.NewLog()
	generator := outcome.NewGeneratorWithRNG(func(int) int { return 0 })

	return round.NewService(ledgerStore, registryStore, notificationLog, generator)
}

// BenchmarkPlaceBet measures bet placement: one ledger debit plus one token
// generation and record insert.
func BenchmarkPlaceBet(b *testing.B) {
	svc := newBenchService()
	ctx := context.Background()
	bet := decimal.NewFromInt(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.PlaceBet(ctx, 1, bet); err != nil {
			b.Fatalf("PlaceBet failed: %v", err)
		}
	}
}

// BenchmarkFullRound measures a complete bet -> spin -> payout round.
func BenchmarkFullRound(b *testing.B) {
	svc := newBenchService()
	ctx := context.Background()
	bet := decimal.NewFromInt(10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		receipt, err := svc.PlaceBet(ctx, 1, bet)
		if err != nil {
			b.Fatalf("PlaceBet failed: %v", err)
		}

		result, err := svc.Spin(ctx, 1, bet, receipt.TransactionID)
		if err != nil {
			b.Fatalf("Spin failed: %v", err)
		}

		if _, err := svc.Payout(ctx, 1, receipt.TransactionID, result.WinAmount); err != nil {
			b.Fatalf("Payout failed: %v", err)
		}
	}
}

// BenchmarkFullRoundParallel exercises lock contention on a single user.
func BenchmarkFullRoundParallel(b *testing.B) {
	svc := newBenchService()
	bet := decimal.NewFromInt(10)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			receipt, err := svc.PlaceBet(ctx, 1, bet)
			if err != nil {
				b.Fatalf("PlaceBet failed: %v", err)
			}

			result, err := svc.Spin(ctx, 1, bet, receipt.TransactionID)
			if err != nil {
				b.Fatalf("Spin failed: %v", err)
			}

			if _, err := svc.Payout(ctx, 1, receipt.TransactionID, result.WinAmount); err != nil {
				b.Fatalf("Payout failed: %v", err)
			}
		}
	})
}
