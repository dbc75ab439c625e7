package auth

import (
	"strings"
	"testing"
)

func TestCSRFGenerateValidate(t *testing.T) {
	manager := NewCSRFManager("test-secret", 30)

	token, nonce, err := manager.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if nonce == "" {
		t.Fatal("Generate() returned an empty nonce")
	}
	if err := manager.Validate(token, nonce); err != nil {
		t.Errorf("Validate() of fresh token failed: %v", err)
	}
}

func TestCSRFValidateRejections(t *testing.T) {
	manager := NewCSRFManager("test-secret", 30)
	token, nonce, err := manager.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
		nonce string
	}{
		{"empty token", "", nonce},
		{"garbage token", "not-a-token", nonce},
		{"tampered token", token[:len(token)-2] + "xx", nonce},
		{"missing cookie nonce", token, ""},
		{"wrong cookie nonce", token, "some-other-nonce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := manager.Validate(tt.token, tt.nonce); err == nil {
				t.Error("Validate() should reject the token")
			}
		})
	}
}

func TestCSRFTokenBoundToOwnNonce(t *testing.T) {
	manager := NewCSRFManager("test-secret", 30)

	// A token issued to one client must not validate against the cookie of
	// another, even though both carry valid signatures.
	firstToken, _, err := manager.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	_, secondNonce, err := manager.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if err := manager.Validate(firstToken, secondNonce); err == nil {
		t.Error("Validate() must reject a token paired with another client's nonce")
	}
}

func TestCSRFRejectsForeignSecret(t *testing.T) {
	token, nonce, err := NewCSRFManager("secret-a", 30).Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := NewCSRFManager("secret-b", 30).Validate(token, nonce); err == nil {
		t.Error("Validate() must reject tokens signed with another secret")
	}
}

func TestCSRFTokensAreUnique(t *testing.T) {
	manager := NewCSRFManager("test-secret", 30)

	first, firstNonce, err := manager.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, secondNonce, err := manager.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if strings.EqualFold(first, second) || firstNonce == secondNonce {
		t.Error("consecutive tokens should differ via their nonce")
	}
}
