package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/portfolio-api/internal/domain"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

// SubjectLookup is the read-only view of the credential store the verifier
// needs. Lookup is by case-insensitive email.
type SubjectLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.Subject, error)
}

// Verifier validates an email/password pair against a stored credential
// record.
type Verifier struct {
	subjects SubjectLookup
}

// NewVerifier builds a verifier on top of the given store.
func NewVerifier(subjects SubjectLookup) *Verifier {
	return &Verifier{subjects: subjects}
}

// Verify checks the credentials and returns the matching subject. Unknown
// email and wrong password both fail with ErrInvalidCredentials; an inactive
// account with correct lookup fails with ErrAccountDisabled. A store failure
// surfaces as SERVICE_UNAVAILABLE, never as a credential error.
func (v *Verifier) Verify(ctx context.Context, email, password string) (*domain.Subject, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	subject, err := v.subjects.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.NewServiceUnavailable("credential store unavailable", err)
	}

	if subject.Status == domain.SubjectStatusInactive {
		return nil, ErrAccountDisabled
	}

	if err := ComparePassword(subject.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return subject, nil
}
