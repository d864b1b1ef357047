package dto

import (
	"time"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// ContactRequest payload for the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactMessageResponse representation for the admin inbox.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactMessageResponse maps a domain message.
func NewContactMessageResponse(message *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Body,
		Read:      message.Read,
		CreatedAt: message.CreatedAt,
	}
}
