package models

import (
	"testing"
	"time"
)

func TestPasswordResetToken_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		used      bool
		expiresAt time.Time
		want      bool
	}{
		{"fresh token", false, time.Now().Add(time.Hour), true},
		{"expired token", false, time.Now().Add(-time.Minute), false},
		{"used token", true, time.Now().Add(time.Hour), false},
		{"used and expired", true, time.Now().Add(-time.Minute), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok := &PasswordResetToken{Used: tc.used, ExpiresAt: tc.expiresAt}
			if got := tok.IsValid(); got != tc.want {
				t.Fatalf("IsValid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPasswordResetToken_IsExpired(t *testing.T) {
	tok := &PasswordResetToken{ExpiresAt: time.Now().Add(50 * time.Millisecond)}
	if tok.IsExpired() {
		t.Fatalf("token should not be expired yet")
	}
	time.Sleep(60 * time.Millisecond)
	if !tok.IsExpired() {
		t.Fatalf("token should be expired after its expiry instant")
	}
}
