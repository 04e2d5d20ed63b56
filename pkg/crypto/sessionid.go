package crypto

import (
	"crypto/rand"
	"encoding/hex"
)

// SessionIDBytes is the entropy of a session identifier: 32 random
// bytes, 256 bits.
const SessionIDBytes = 32

// NewSessionID generates a cryptographically secure session identifier,
// hex-encoded. Identifiers are infeasible to predict or enumerate.
func NewSessionID() (string, error) {
	buf := make([]byte, SessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
