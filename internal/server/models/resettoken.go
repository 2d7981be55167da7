package models

import "time"

// PasswordResetToken is a single-use, time-boxed credential artifact.
// The used flag only ever moves from false to true.
type PasswordResetToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsExpired reports whether the token's validity window has passed.
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// IsValid reports whether the token can still be redeemed: not yet
// consumed and not expired.
func (t *PasswordResetToken) IsValid() bool {
	return !t.Used && !t.IsExpired()
}
