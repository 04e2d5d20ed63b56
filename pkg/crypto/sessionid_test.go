package crypto

import (
	"encoding/hex"
	"testing"
)

func TestNewSessionID_Format(t *testing.T) {
	// Act
	id, err := NewSessionID()

	// Assert
	if err != nil {
		t.Fatalf("NewSessionID() error = %v", err)
	}
	decoded, err := hex.DecodeString(id)
	if err != nil {
		t.Fatalf("session id is not valid hex: %v", err)
	}
	if len(decoded) != SessionIDBytes {
		t.Errorf("session id entropy = %d bytes, want %d", len(decoded), SessionIDBytes)
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	// Arrange
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	// Act & Assert
	for i := 0; i < iterations; i++ {
		id, err := NewSessionID()
		if err != nil {
			t.Fatalf("iteration %d: NewSessionID() error = %v", i, err)
		}
		if seen[id] {
			t.Fatalf("duplicate session id generated: %q", id)
		}
		seen[id] = true
	}
}
