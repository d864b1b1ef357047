package dto

import (
	"time"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// LoginRequest payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SubjectProjection is the public view of an account. The password hash is
// deliberately absent and must never be added.
type SubjectProjection struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	AvatarURL string      `json:"picture,omitempty"`
	Role      domain.Role `json:"role"`
}

// NewSubjectProjection maps a subject to its public view.
func NewSubjectProjection(subject *domain.Subject) SubjectProjection {
	return SubjectProjection{
		ID:        subject.ID,
		Name:      subject.Name,
		Email:     subject.Email,
		Phone:     subject.Phone,
		AvatarURL: subject.AvatarURL,
		Role:      subject.Role,
	}
}
