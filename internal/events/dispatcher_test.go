package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherInvokesAllHandlers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventSubscriptionCreated, func(ctx context.Context, event Event) error {
		order = append(order, "first")
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(EventSubscriptionCreated, func(ctx context.Context, event Event) error {
		order = append(order, "second")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		ID:        "s-1",
		Type:      EventSubscriptionCreated,
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("handler order = %v, a failing handler must not stop the rest", order)
	}
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventSubscriptionCreated, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventType("unrelated")}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if called {
		t.Error("handler ran for an event type it never subscribed to")
	}
}
