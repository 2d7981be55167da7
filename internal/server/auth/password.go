package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// passwordSpecials is the punctuation set the strength policy accepts.
const passwordSpecials = "!@#$%^&*(),.?|<>"

// HashPassword generates a salted bcrypt hash of the given password.
// Two calls on the same input produce different hash strings.
func HashPassword(password string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Any comparison failure, including a malformed hash string, is a
// definitive false; this function never returns an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsValidPassword checks the strength policy: at least 8 characters, at
// least one uppercase letter, and at least one special character from
// passwordSpecials.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}

	return hasUpper && strings.ContainsAny(password, passwordSpecials)
}
