package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Sup3rSecret!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Sup3rSecret!" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !VerifyPassword("Sup3rSecret!", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if VerifyPassword("WrongPass1!", hash) {
		t.Fatalf("expected mismatching password to fail verification")
	}
}

func TestHashPassword_SaltedOutputDiffers(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("SamePass1!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("SamePass1!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	// a malformed stored hash must yield false, never a panic or error
	if VerifyPassword("whatever", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if VerifyPassword("whatever", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestIsValidPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "NewPass1!", true},
		{"too short", "Np1!", false},
		{"no uppercase", "newpass1!", false},
		{"no special", "NewPass11", false},
		{"special not in set", "NewPass1_", false},
		{"uppercase and comma", "Abcdefg,", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidPassword(tc.password); got != tc.want {
				t.Fatalf("IsValidPassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}
