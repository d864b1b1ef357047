package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-api/internal/domain"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

const testCookieName = "portfolio_session"

// newGatedApp wires a fiber app the way the server does: error translation
// first, then the auth middleware on protected routes.
func newGatedApp(tm *TokenManager) *fiber.App {
	gate := NewGate(tm)
	mw := NewMiddleware(gate, []TokenSource{
		HeaderTokenSource{},
		CookieTokenSource{Name: testCookieName},
	}, "/login")

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		}
		return nil
	})

	app.Get("/auth/me", mw.Authenticate(), func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"sub": claims.SubjectID})
	})
	app.Get("/admin/projects", mw.RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string, mutate func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestMiddlewareMissingTokenAPI(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)

	resp := doRequest(t, app, "/auth/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestMiddlewareBearerToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)
	token := issueFor(t, tm, domain.RoleUser)

	resp := doRequest(t, app, "/auth/me", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMiddlewareCookieToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)
	token := issueFor(t, tm, domain.RoleUser)

	resp := doRequest(t, app, "/auth/me", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMiddlewareInsufficientRole(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)
	token := issueFor(t, tm, domain.RoleUser)

	resp := doRequest(t, app, "/admin/projects", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestMiddlewareAdminPasses(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)
	token := issueFor(t, tm, domain.RoleAdmin)

	resp := doRequest(t, app, "/admin/projects", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)
	expired := signExpired(t, tm, testSubject(domain.RoleAdmin))

	resp := doRequest(t, app, "/admin/projects", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+expired)
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestMiddlewareRedirectsInteractiveClients(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)
	userToken := issueFor(t, tm, domain.RoleUser)

	cases := []struct {
		name   string
		mutate func(*http.Request)
	}{
		{"no token", func(r *http.Request) {
			r.Header.Set("Accept", "text/html,application/xhtml+xml")
		}},
		{"user on admin route", func(r *http.Request) {
			r.Header.Set("Accept", "text/html")
			r.AddCookie(&http.Cookie{Name: testCookieName, Value: userToken})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, "/admin/projects", tc.mutate)
			if resp.StatusCode != http.StatusFound {
				t.Fatalf("status = %d, want 302", resp.StatusCode)
			}
			if loc := resp.Header.Get("Location"); loc != "/login" {
				t.Errorf("Location = %q, want /login", loc)
			}
		})
	}
}

func TestHeaderTokenSourceRejectsMalformedHeader(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	app := newGatedApp(tm)

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		resp := doRequest(t, app, "/auth/me", func(r *http.Request) {
			r.Header.Set("Authorization", header)
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, resp.StatusCode)
		}
	}
}
