package identity

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrRegistrationRejected   = errors.New("identity provider rejected registration")
)
