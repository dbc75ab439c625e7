package auth

import (
	"sync"
	"time"
)

// LoginLimiter tracks failed login attempts in a sliding window, counted
// independently per client IP and per attempted username. Distributing
// attempts across many IPs against one username is still capped, and one IP
// trying many usernames is still capped.
type LoginLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	maxAttempts int
	byIP        map[string][]time.Time
	byUsername  map[string][]time.Time
}

// NewLoginLimiter builds a limiter. Defaults to a 15 minute window and 8
// attempts when given non-positive values.
func NewLoginLimiter(window time.Duration, maxAttempts int) *LoginLimiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 8
	}
	return &LoginLimiter{
		window:      window,
		maxAttempts: maxAttempts,
		byIP:        make(map[string][]time.Time),
		byUsername:  make(map[string][]time.Time),
	}
}

// IsLimited prunes both windows of entries older than now-window and reports
// whether either window has reached the attempt cap. Pruning is lazy: it
// happens here, not on a background timer.
func (l *LoginLimiter) IsLimited(ip, username string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ipAttempts := prune(l.byIP, ip, now.Add(-l.window))
	usernameAttempts := prune(l.byUsername, username, now.Add(-l.window))
	return len(ipAttempts) >= l.maxAttempts || len(usernameAttempts) >= l.maxAttempts
}

// RecordFailure appends a failure instant to both the IP and username windows.
func (l *LoginLimiter) RecordFailure(ip, username string, now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byIP[ip] = append(l.byIP[ip], now)
	l.byUsername[username] = append(l.byUsername[username], now)
}

// Clear drops both windows entirely. Called on successful login: successful
// auth gives a clean slate rather than a decayed one.
func (l *LoginLimiter) Clear(ip, username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.byIP, ip)
	delete(l.byUsername, username)
}

// prune removes timestamps older than cutoff; attempts are stored oldest
// first. Emptied windows are removed from the map so probe traffic cannot
// grow it without bound.
func prune(windows map[string][]time.Time, key string, cutoff time.Time) []time.Time {
	attempts := windows[key]
	idx := 0
	for idx < len(attempts) && attempts[idx].Before(cutoff) {
		idx++
	}
	if idx == 0 {
		return attempts
	}
	attempts = attempts[idx:]
	if len(attempts) == 0 {
		delete(windows, key)
		return nil
	}
	windows[key] = attempts
	return attempts
}
