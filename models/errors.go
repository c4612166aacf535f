package models

import "errors"

// ErrValidation is the sentinel wrapped by every model constructor when the
// supplied data fails a domain rule (malformed duration, bad period format,
// non-positive distance, invalid email and so on).
//
// Callers should match it with [errors.Is] and treat the full error message
// as safe to return to the client.
var ErrValidation = errors.New("validation error")
