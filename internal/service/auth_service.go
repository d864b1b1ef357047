package service

import (
	"context"
	"time"

	"github.com/spec-kit/portfolio-api/internal/auth"
	"github.com/spec-kit/portfolio-api/internal/config"
	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/events"
	"github.com/spec-kit/portfolio-api/internal/repository"
)

// AuthService coordinates login, token issuance and password changes.
type AuthService struct {
	subjects   repository.SubjectRepository
	verifier   *auth.Verifier
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, subjects repository.SubjectRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		subjects:   subjects,
		verifier:   auth.NewVerifier(subjects),
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login verifies credentials and mints a session token embedding the
// subject's role at this moment. Credential failures pass through untouched
// so the handler can collapse them into one generic message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Subject, string, time.Time, error) {
	subject, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokenMgr.Issue(subject)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventSubjectLoggedIn, events.SubjectLoggedInPayload{
			SubjectID: subject.ID,
			Role:      string(subject.Role),
		}))
	}
	return subject, token, expiresAt, nil
}

// GetSubject loads a subject by id for the /auth/me projection.
func (s *AuthService) GetSubject(ctx context.Context, id string) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, subjectID, currentPassword, newPassword string) error {
	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(subject.PasswordHash, currentPassword); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	subject.PasswordHash = hash
	return s.subjects.Update(ctx, subject)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
