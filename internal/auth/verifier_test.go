package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/portfolio-api/internal/domain"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

type stubLookup struct {
	subject   *domain.Subject
	err       error
	lastEmail string
}

func (s *stubLookup) GetByEmail(_ context.Context, email string) (*domain.Subject, error) {
	s.lastEmail = email
	if s.err != nil {
		return nil, s.err
	}
	return s.subject, nil
}

func storedSubject(t *testing.T, password string, status domain.SubjectStatus) *domain.Subject {
	t.Helper()
	hash, err := HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.Subject{
		ID:           "subj-1",
		Email:        "owner@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       status,
	}
}

func TestVerifySuccess(t *testing.T) {
	lookup := &stubLookup{subject: storedSubject(t, "hunter2", domain.SubjectStatusActive)}
	verifier := NewVerifier(lookup)

	subject, err := verifier.Verify(context.Background(), "  Owner@Example.COM ", "hunter2")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject.ID != "subj-1" {
		t.Errorf("subject.ID = %q", subject.ID)
	}
	if lookup.lastEmail != "owner@example.com" {
		t.Errorf("lookup email = %q, want normalized lowercase", lookup.lastEmail)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	lookup := &stubLookup{subject: storedSubject(t, "hunter2", domain.SubjectStatusActive)}
	verifier := NewVerifier(lookup)

	_, err := verifier.Verify(context.Background(), "owner@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyUnknownEmail(t *testing.T) {
	verifier := NewVerifier(&stubLookup{err: pgx.ErrNoRows})

	_, err := verifier.Verify(context.Background(), "nobody@example.com", "hunter2")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyEmptyInput(t *testing.T) {
	lookup := &stubLookup{subject: storedSubject(t, "hunter2", domain.SubjectStatusActive)}
	verifier := NewVerifier(lookup)

	cases := []struct{ email, password string }{
		{"", "hunter2"},
		{"owner@example.com", ""},
		{"   ", "hunter2"},
	}
	for _, tc := range cases {
		if _, err := verifier.Verify(context.Background(), tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Verify(%q, %q) err = %v, want ErrInvalidCredentials", tc.email, tc.password, err)
		}
	}
}

func TestVerifyDisabledAccount(t *testing.T) {
	lookup := &stubLookup{subject: storedSubject(t, "hunter2", domain.SubjectStatusInactive)}
	verifier := NewVerifier(lookup)

	_, err := verifier.Verify(context.Background(), "owner@example.com", "hunter2")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("err = %v, want ErrAccountDisabled", err)
	}
}

func TestVerifyStoreFailureIsNotCredentialError(t *testing.T) {
	verifier := NewVerifier(&stubLookup{err: errors.New("connection refused")})

	_, err := verifier.Verify(context.Background(), "owner@example.com", "hunter2")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("store failure reported as invalid credentials")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "SERVICE_UNAVAILABLE" {
		t.Fatalf("err = %v, want SERVICE_UNAVAILABLE domain error", err)
	}
}
