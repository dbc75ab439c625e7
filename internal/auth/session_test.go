package auth

import (
	"testing"
	"time"
)

func TestSessionStoreLifecycle(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(func() time.Time { return fixed })

	token, err := store.Create("admin")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(token) < 43 {
		// 32 random bytes base64url-encode to 43 characters.
		t.Errorf("token length = %d, want >= 43", len(token))
	}

	username, ok := store.Lookup(token)
	if !ok || username != "admin" {
		t.Errorf("Lookup() = (%q, %v), want (admin, true)", username, ok)
	}

	store.Delete(token)
	if _, ok := store.Lookup(token); ok {
		t.Error("Lookup() after Delete should miss")
	}

	// Idempotent: deleting twice causes no error or panic.
	store.Delete(token)
}

func TestSessionStoreUnknownToken(t *testing.T) {
	store := NewSessionStore(nil)

	if _, ok := store.Lookup("no-such-token"); ok {
		t.Error("Lookup() of unknown token should miss")
	}
	if _, ok := store.Lookup(""); ok {
		t.Error("Lookup() of empty token should miss")
	}
}

func TestSessionStoreTokensAreUnique(t *testing.T) {
	store := NewSessionStore(nil)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create("admin")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}
