package utils

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenByteLength is the entropy per generated token (64+ bits per token
// keeps collisions out of reach for a process lifetime).
const TokenByteLength = 8

// NewToken returns an opaque identifier of the form "<prefix><16 hex chars>".
// Token generation uses crypto/rand and is deliberately decoupled from the
// outcome RNG.
func NewToken(prefix string) (string, error) {
	buf := make([]byte, TokenByteLength)
	if _, err := crand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return prefix + hex.EncodeToString(buf), nil
}
