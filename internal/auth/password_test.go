package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredentialsVerify(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	creds := NewCredentials("admin", hash)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid", "admin", "correct horse", true},
		{"wrong password", "admin", "battery staple", false},
		{"wrong username", "root", "correct horse", false},
		{"both wrong", "root", "battery staple", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := creds.Verify(tt.username, tt.password); got != tt.want {
				t.Errorf("Verify(%q, ...) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}

func TestCredentialsVerifyMalformedHash(t *testing.T) {
	creds := NewCredentials("admin", "not-a-bcrypt-hash")
	if creds.Verify("admin", "anything") {
		t.Error("Verify() with malformed stored hash must fail closed")
	}
}
