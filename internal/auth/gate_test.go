package auth

import (
	"testing"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

func issueFor(t *testing.T, tm *TokenManager, role domain.Role) string {
	t.Helper()
	token, _, err := tm.Issue(testSubject(role))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return token
}

func TestGateRoleHierarchy(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	gate := NewGate(tm)

	cases := []struct {
		name     string
		role     domain.Role
		required domain.Role
		allowed  bool
	}{
		{"user meets user", domain.RoleUser, domain.RoleUser, true},
		{"admin meets user", domain.RoleAdmin, domain.RoleUser, true},
		{"admin meets admin", domain.RoleAdmin, domain.RoleAdmin, true},
		{"user denied admin", domain.RoleUser, domain.RoleAdmin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := gate.Authorize(issueFor(t, tm, tc.role), tc.required)
			if decision.Allowed != tc.allowed {
				t.Fatalf("Allowed = %v, want %v", decision.Allowed, tc.allowed)
			}
			if !tc.allowed && decision.Reason != DenyInsufficientRole {
				t.Errorf("Reason = %q, want %q", decision.Reason, DenyInsufficientRole)
			}
			if tc.allowed && decision.Claims == nil {
				t.Error("allowed decision carries no claims")
			}
		})
	}
}

func TestGateDenyReasons(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	gate := NewGate(tm)

	if d := gate.AuthorizeAny(""); d.Allowed || d.Reason != DenyNoToken {
		t.Errorf("empty token: %+v, want deny NO_TOKEN", d)
	}
	if d := gate.AuthorizeAny("garbage"); d.Allowed || d.Reason != DenyInvalidToken {
		t.Errorf("garbage token: %+v, want deny INVALID_TOKEN", d)
	}
	expired := signExpired(t, tm, testSubject(domain.RoleAdmin))
	if d := gate.AuthorizeAny(expired); d.Allowed || d.Reason != DenyTokenExpired {
		t.Errorf("expired token: %+v, want deny TOKEN_EXPIRED", d)
	}

	other := NewTokenManager("other-secret", 1)
	forged := issueFor(t, other, domain.RoleAdmin)
	if d := gate.Authorize(forged, domain.RoleAdmin); d.Allowed || d.Reason != DenyInvalidToken {
		t.Errorf("foreign-signed token: %+v, want deny INVALID_TOKEN", d)
	}
}

func TestRoleSatisfiesUnknownRole(t *testing.T) {
	if domain.Role("SUPERUSER").Satisfies(domain.RoleUser) {
		t.Error("unknown role satisfied USER requirement")
	}
	if domain.RoleAdmin.Satisfies(domain.Role("SUPERUSER")) {
		t.Error("ADMIN satisfied unknown requirement")
	}
}
