package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(nil)

	var received []Event
	dispatcher.Subscribe(EventProjectLiked, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := New(EventProjectLiked, ProjectLikedPayload{ProjectID: "proj-1", Likes: 3})
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(received) != 1 || received[0].ID != event.ID {
		t.Fatalf("received = %+v", received)
	}
}

func TestDispatcherIgnoresUnrelatedEvents(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(nil)

	called := false
	dispatcher.Subscribe(EventContactMessageReceived, func(context.Context, Event) error {
		called = true
		return nil
	})

	_ = dispatcher.Publish(context.Background(), New(EventSubjectLoggedIn, nil))
	if called {
		t.Error("handler invoked for unrelated event type")
	}
}

func TestDispatcherFailingHandlerDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(nil)

	secondCalled := false
	dispatcher.Subscribe(EventContactMessageReceived, func(context.Context, Event) error {
		return errors.New("handler down")
	})
	dispatcher.Subscribe(EventContactMessageReceived, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), New(EventContactMessageReceived, nil)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !secondCalled {
		t.Error("second handler skipped after first failed")
	}
}
