package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-api/internal/domain"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

const claimsKey = "auth_claims"

// TokenSource extracts a bearer token from a request. The extraction
// strategy (header, cookie) is decided once at wiring time, not per call
// site.
type TokenSource interface {
	Extract(c *fiber.Ctx) string
}

// HeaderTokenSource reads "Authorization: Bearer <token>".
type HeaderTokenSource struct{}

// Extract implements TokenSource.
func (HeaderTokenSource) Extract(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// CookieTokenSource reads the token from an HTTP cookie, used by the
// interactive dashboard.
type CookieTokenSource struct {
	Name string
}

// Extract implements TokenSource.
func (s CookieTokenSource) Extract(c *fiber.Ctx) string {
	return c.Cookies(s.Name)
}

// Middleware applies the access gate to protected routes. The gate only
// returns a decision; this layer translates a Deny into a redirect for
// interactive clients or a 401/403 for API clients.
type Middleware struct {
	gate     *Gate
	sources  []TokenSource
	loginURL string
}

// NewMiddleware builds the middleware. Sources are tried in order; loginURL
// is where denied interactive requests are sent (empty disables redirects).
func NewMiddleware(gate *Gate, sources []TokenSource, loginURL string) *Middleware {
	if len(sources) == 0 {
		sources = []TokenSource{HeaderTokenSource{}}
	}
	return &Middleware{gate: gate, sources: sources, loginURL: loginURL}
}

// Authenticate validates the session token and stores its claims in request
// locals. Any authenticated subject passes; role checks are layered on with
// RequireRole.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := m.gate.AuthorizeAny(m.extract(c))
		if !decision.Allowed {
			return m.reject(c, decision.Reason)
		}
		c.Locals(claimsKey, decision.Claims)
		return c.Next()
	}
}

// RequireRole enforces both authentication and a minimum role in one step.
func (m *Middleware) RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := m.gate.Authorize(m.extract(c), required)
		if !decision.Allowed {
			return m.reject(c, decision.Reason)
		}
		c.Locals(claimsKey, decision.Claims)
		return c.Next()
	}
}

func (m *Middleware) extract(c *fiber.Ctx) string {
	for _, source := range m.sources {
		if token := source.Extract(c); token != "" {
			return token
		}
	}
	return ""
}

func (m *Middleware) reject(c *fiber.Ctx, reason DenyReason) error {
	if m.loginURL != "" && wantsHTML(c) {
		return c.Redirect(m.loginURL, fiber.StatusFound)
	}
	switch reason {
	case DenyInsufficientRole:
		return apperrors.NewForbidden("insufficient role")
	case DenyTokenExpired:
		return apperrors.NewUnauthorized("token expired")
	case DenyInvalidToken:
		return apperrors.NewUnauthorized("invalid token")
	default:
		return apperrors.NewUnauthorized("authentication required")
	}
}

func wantsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), "text/html")
}

// ClaimsFromContext retrieves the authenticated claims stored by the
// middleware.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
