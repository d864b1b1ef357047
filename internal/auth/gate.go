package auth

import "github.com/spec-kit/portfolio-api/internal/domain"

// DenyReason explains why the gate refused a request.
type DenyReason string

const (
	DenyNoToken          DenyReason = "NO_TOKEN"
	DenyInvalidToken     DenyReason = "INVALID_TOKEN"
	DenyTokenExpired     DenyReason = "TOKEN_EXPIRED"
	DenyInsufficientRole DenyReason = "INSUFFICIENT_ROLE"
)

// Decision is the gate's verdict on a single request. The gate never touches
// the transport; the caller decides whether a Deny becomes a redirect or a
// 401/403 response.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	Claims  *Claims
}

func allow(claims *Claims) Decision {
	return Decision{Allowed: true, Claims: claims}
}

func deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// Gate is the authorization checkpoint applied to protected routes. It is
// stateless: every request is evaluated independently from the token alone.
type Gate struct {
	tokens *TokenManager
}

// NewGate builds a gate around the token manager.
func NewGate(tokens *TokenManager) *Gate {
	return &Gate{tokens: tokens}
}

// Authorize validates the token and checks the role requirement. An empty
// token denies with NO_TOKEN; validation failures carry their own reason;
// a valid token whose role does not satisfy the requirement denies with
// INSUFFICIENT_ROLE.
func (g *Gate) Authorize(tokenStr string, required domain.Role) Decision {
	if tokenStr == "" {
		return deny(DenyNoToken)
	}

	claims, err := g.tokens.Validate(tokenStr)
	if err != nil {
		switch err {
		case ErrTokenExpired:
			return deny(DenyTokenExpired)
		default:
			return deny(DenyInvalidToken)
		}
	}

	if !claims.Role.Satisfies(required) {
		return deny(DenyInsufficientRole)
	}
	return allow(claims)
}

// AuthorizeAny validates the token without a role requirement: any
// authenticated subject is allowed.
func (g *Gate) AuthorizeAny(tokenStr string) Decision {
	return g.Authorize(tokenStr, domain.RoleUser)
}
