package service

import (
	"context"
	"strings"

	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/events"
	"github.com/spec-kit/portfolio-api/internal/repository"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

// ContactService accepts visitor messages and exposes them to admins.
type ContactService struct {
	messages   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(messages repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{messages: messages, dispatcher: dispatcher}
}

// ContactInput carries a submitted message.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Submit validates and stores a contact message, then publishes an event for
// the notification worker.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, apperrors.NewValidationError("name and message required", nil)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, apperrors.NewValidationError("valid email required", nil)
	}

	message := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventContactMessageReceived, events.ContactMessageReceivedPayload{
			MessageID: message.ID,
			Name:      message.Name,
			Email:     message.Email,
			Subject:   message.Subject,
		}))
	}
	return message, nil
}

// List returns a page of messages for the admin inbox.
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.messages.List(ctx, limit, offset)
}

// MarkRead flags a message as handled.
func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	return s.messages.MarkRead(ctx, id)
}
