package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/events"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

type mockContactRepo struct {
	created *domain.ContactMessage
	readIDs []string
}

func (m *mockContactRepo) Create(_ context.Context, message *domain.ContactMessage) error {
	message.ID = "msg-1"
	m.created = message
	return nil
}

func (m *mockContactRepo) List(_ context.Context, _, _ int) ([]domain.ContactMessage, int, error) {
	return []domain.ContactMessage{}, 0, nil
}

func (m *mockContactRepo) MarkRead(_ context.Context, id string) error {
	m.readIDs = append(m.readIDs, id)
	return nil
}

func TestContactSubmitPublishesEvent(t *testing.T) {
	repo := &mockContactRepo{}
	dispatcher := &recordingDispatcher{}
	svc := NewContactService(repo, dispatcher)

	message, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Body:    "Nice portfolio.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if message.ID != "msg-1" {
		t.Errorf("message.ID = %q", message.ID)
	}

	if len(dispatcher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(dispatcher.published))
	}
	event := dispatcher.published[0]
	if event.Type != events.EventContactMessageReceived {
		t.Errorf("event.Type = %q", event.Type)
	}
	payload, ok := event.Payload.(events.ContactMessageReceivedPayload)
	if !ok {
		t.Fatalf("payload type %T", event.Payload)
	}
	if payload.MessageID != "msg-1" || payload.Email != "visitor@example.com" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, &recordingDispatcher{})

	cases := []struct {
		name  string
		input ContactInput
	}{
		{"missing name", ContactInput{Email: "v@example.com", Body: "hi"}},
		{"missing body", ContactInput{Name: "V", Email: "v@example.com"}},
		{"bad email", ContactInput{Name: "V", Email: "not-an-email", Body: "hi"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.input)
			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
				t.Fatalf("err = %v, want VALIDATION_FAILED", err)
			}
		})
	}
	if repo.created != nil {
		t.Error("invalid input reached the store")
	}
}

func TestContactListClampsLimit(t *testing.T) {
	svc := NewContactService(&mockContactRepo{}, nil)

	if _, _, err := svc.List(context.Background(), 0, -5); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, _, err := svc.List(context.Background(), 500, 0); err != nil {
		t.Fatalf("List: %v", err)
	}
}
