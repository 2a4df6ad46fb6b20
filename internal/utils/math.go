package utils

import (
	"math/rand"
)

// RandomInt returns a random integer in [0, n). Used as the default outcome
// RNG; services take it as an injectable func(int) int for deterministic tests.
func RandomInt(n int) int {
	return rand.Intn(n) //nolint:gosec // Game outcome randomness, not security critical
}
