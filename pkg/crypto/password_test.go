package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "Abcdef1!"},
		{name: "long password", password: strings.Repeat("Aa1!", 18)},
		{name: "unicode", password: "pässw0rD!"},
		{name: "special chars", password: "p@ssw0rD!#$%"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := &Bcrypt{Cost: bcrypt.MinCost}

			// Act
			hash, err := b.Hash(test.password)

			// Assert
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == "" {
				t.Error("Hash() returned empty hash")
			}
			if !strings.HasPrefix(hash, "$2") {
				t.Errorf("Hash() should produce a bcrypt hash, got %q", hash)
			}
			if strings.Contains(hash, test.password) {
				t.Error("Hash() must not embed the plaintext password")
			}
		})
	}
}

func TestBcrypt_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	b := &Bcrypt{Cost: bcrypt.MinCost}
	password := "samePassword1!"

	// Act
	hash1, _ := b.Hash(password)
	hash2, _ := b.Hash(password)

	// Assert
	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes with unique salts")
	}
}

func TestBcrypt_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		wantOk   bool
	}{
		{name: "correct password", password: "correctPassword1!", attempt: "correctPassword1!", wantOk: true},
		{name: "wrong password", password: "correctPassword1!", attempt: "wrongPassword1!", wantOk: false},
		{name: "case sensitive", password: "correctPassword1!", attempt: "correctpassword1!", wantOk: false},
		{name: "extra character", password: "correctPassword1!", attempt: "correctPassword1!x", wantOk: false},
		{name: "empty attempt", password: "correctPassword1!", attempt: "", wantOk: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := &Bcrypt{Cost: bcrypt.MinCost}
			hash, err := b.Hash(test.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			// Act
			ok, err := b.Verify(test.attempt, hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if ok != test.wantOk {
				t.Errorf("Verify() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}

func TestBcrypt_Verify_MalformedHash(t *testing.T) {
	// Arrange
	b := NewBcrypt()

	// Act
	ok, err := b.Verify("whatever", "not-a-bcrypt-hash")

	// Assert
	if err == nil {
		t.Fatal("Verify() should error on a malformed hash")
	}
	if ok {
		t.Error("Verify() must not report a match on a malformed hash")
	}
}

func TestNewBcrypt_DefaultCost(t *testing.T) {
	// Arrange & Act
	b := NewBcrypt()

	// Assert
	if b.Cost != DefaultBcryptCost {
		t.Errorf("NewBcrypt() cost = %d, want %d", b.Cost, DefaultBcryptCost)
	}
	if b.Cost < 12 {
		t.Errorf("default cost %d is below the brute-force floor", b.Cost)
	}
}
