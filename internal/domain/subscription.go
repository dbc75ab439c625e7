package domain

import "time"

// Subscription is an email/phone signup recorded from the public site.
// Records are append-only; email is stored lowercased.
type Subscription struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Consent    bool      `json:"consent"`
	SourcePage string    `json:"source_page"`
}
