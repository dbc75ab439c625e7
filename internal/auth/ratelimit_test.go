package auth

import (
	"fmt"
	"testing"
	"time"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLoginLimiterBlocksAfterMaxAttempts(t *testing.T) {
	limiter := NewLoginLimiter(15*time.Minute, 8)

	for i := 0; i < 8; i++ {
		now := baseTime.Add(time.Duration(i) * time.Second)
		if limiter.IsLimited("10.0.0.1", "admin", now) {
			t.Fatalf("limited after only %d failures", i)
		}
		limiter.RecordFailure("10.0.0.1", "admin", now)
	}

	if !limiter.IsLimited("10.0.0.1", "admin", baseTime.Add(10*time.Second)) {
		t.Error("not limited after 8 failures within the window")
	}
}

func TestLoginLimiterCapsUsernameAcrossIPs(t *testing.T) {
	limiter := NewLoginLimiter(15*time.Minute, 8)

	// Attacker rotates IPs against a single username.
	for i := 0; i < 8; i++ {
		ip := fmt.Sprintf("10.0.0.%d", i)
		limiter.RecordFailure(ip, "admin", baseTime.Add(time.Duration(i)*time.Second))
	}

	if !limiter.IsLimited("10.0.0.99", "admin", baseTime.Add(10*time.Second)) {
		t.Error("username window should cap attempts regardless of IP")
	}
	if limiter.IsLimited("10.0.0.99", "other", baseTime.Add(10*time.Second)) {
		t.Error("a different username from a fresh IP should not be limited")
	}
}

func TestLoginLimiterCapsIPAcrossUsernames(t *testing.T) {
	limiter := NewLoginLimiter(15*time.Minute, 8)

	for i := 0; i < 8; i++ {
		user := fmt.Sprintf("user%d", i)
		limiter.RecordFailure("10.0.0.1", user, baseTime.Add(time.Duration(i)*time.Second))
	}

	if !limiter.IsLimited("10.0.0.1", "yet-another-user", baseTime.Add(10*time.Second)) {
		t.Error("IP window should cap attempts regardless of username")
	}
}

func TestLoginLimiterWindowSlides(t *testing.T) {
	limiter := NewLoginLimiter(15*time.Minute, 8)

	for i := 0; i < 8; i++ {
		limiter.RecordFailure("10.0.0.1", "admin", baseTime.Add(time.Duration(i)*time.Second))
	}
	if !limiter.IsLimited("10.0.0.1", "admin", baseTime.Add(time.Minute)) {
		t.Fatal("expected limited inside window")
	}

	// All failures age out of the trailing window.
	later := baseTime.Add(15*time.Minute + 10*time.Second)
	if limiter.IsLimited("10.0.0.1", "admin", later) {
		t.Error("attempts older than the window must be pruned")
	}
}

func TestLoginLimiterPartialPrune(t *testing.T) {
	limiter := NewLoginLimiter(15*time.Minute, 8)

	// 4 old failures, 4 recent ones.
	for i := 0; i < 4; i++ {
		limiter.RecordFailure("10.0.0.1", "admin", baseTime.Add(time.Duration(i)*time.Second))
	}
	recent := baseTime.Add(10 * time.Minute)
	for i := 0; i < 4; i++ {
		limiter.RecordFailure("10.0.0.1", "admin", recent.Add(time.Duration(i)*time.Second))
	}

	// At basetime+16m the first 4 are outside the window, so only 4 remain.
	now := baseTime.Add(16 * time.Minute)
	if limiter.IsLimited("10.0.0.1", "admin", now) {
		t.Error("only 4 failures remain in the window, should not be limited")
	}
}

func TestLoginLimiterClearGivesCleanSlate(t *testing.T) {
	limiter := NewLoginLimiter(15*time.Minute, 8)

	for i := 0; i < 8; i++ {
		limiter.RecordFailure("10.0.0.1", "admin", baseTime.Add(time.Duration(i)*time.Second))
	}
	if !limiter.IsLimited("10.0.0.1", "admin", baseTime.Add(time.Minute)) {
		t.Fatal("expected limited before clear")
	}

	limiter.Clear("10.0.0.1", "admin")

	// The very next attempt is evaluated, not auto-limited.
	if limiter.IsLimited("10.0.0.1", "admin", baseTime.Add(time.Minute)) {
		t.Error("clear must drop both windows entirely")
	}
}

func TestLoginLimiterDefaults(t *testing.T) {
	limiter := NewLoginLimiter(0, 0)
	if limiter.window != 15*time.Minute {
		t.Errorf("default window = %v, want 15m", limiter.window)
	}
	if limiter.maxAttempts != 8 {
		t.Errorf("default maxAttempts = %d, want 8", limiter.maxAttempts)
	}
}
