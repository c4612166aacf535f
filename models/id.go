package models

import "github.com/google/uuid"

// newID returns a fresh identifier for a Run, Target or User record.
// UUIDv7 is preferred for its time-ordered prefix; on the (practically
// impossible) failure of the v7 generator it falls back to a random v4.
func newID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
