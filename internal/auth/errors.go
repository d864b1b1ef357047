package auth

import "errors"

// Terminal authentication and authorization failures. None of these are
// retried; a request is either authorized or it is not.
var (
	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
