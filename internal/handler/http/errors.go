package http

import "errors"

// Sentinel errors used by the authentication middleware when handling the
// "Authorization" HTTP header. Their messages are the response bodies.
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("authorization header missing")

	// ErrInvalidAuthorizationToken covers every other bearer failure: a
	// malformed header, a malformed token, a bad signature, or an expired
	// token.
	ErrInvalidAuthorizationToken = errors.New("invalid or expired authorization token")
)
