package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSubscriptionCreated EventType = "subscription_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}
