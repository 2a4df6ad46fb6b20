// Package outcome maps a random draw to a spin result and payout multiplier.
// Evaluation is pure; only Draw touches the RNG, and the RNG is injectable so
// tests can pin the reels.
package outcome

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/utils"
)

// Generator draws reels and evaluates them against a bet.
type Generator struct {
	rng func(int) int // Injectable for testing
}

// NewGenerator creates a Generator backed by the default RNG.
func NewGenerator() *Generator {
	return &Generator{rng: utils.RandomInt}
}

// NewGeneratorWithRNG creates a Generator with a custom RNG. rng(n) must
// return a value in [0, n).
func NewGeneratorWithRNG(rng func(int) int) *Generator {
	return &Generator{rng: rng}
}

// Draw spins three reels, each an independent uniform pick from ReelSymbols.
func (g *Generator) Draw() [domain.ReelCount]string {
	var reels [domain.ReelCount]string
	for i := range reels {
		reels[i] = ReelSymbols[g.rng(len(ReelSymbols))]
	}
	return reels
}

// Evaluate determines the outcome for a set of reels. WIN requires all three
// symbols to match; the multiplier is applied to betAmount.
func Evaluate(reels [domain.ReelCount]string, betAmount decimal.Decimal) (domain.SpinOutcome, decimal.Decimal, string) {
	if reels[0] != reels[1] || reels[1] != reels[2] {
		return domain.OutcomeLose, decimal.Zero, MsgLose
	}

	multiplier := DefaultMultiplier
	switch reels[0] {
	case SymbolCherry:
		multiplier = CherryMultiplier
	case SymbolSeven:
		multiplier = SevenMultiplier
	}

	winAmount := betAmount.Mul(decimal.NewFromInt(int64(multiplier)))
	return domain.OutcomeWin, winAmount, fmt.Sprintf(MsgWinFormat, winAmount.String())
}
